// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/objid/objid/internal/logger"
	"github.com/objid/objid/pkg/objid"
)

// EnvConfigJSON names the environment variable whose JSON content overrides the toml config.
const EnvConfigJSON = "OBJID_CONFIG_JSON"

// Default returns the config used if no config file is given.
func Default() Config {
	return Config{
		Log: logger.Log{
			LogLevel:    "warn",
			AppName:     "objid",
			ServiceName: "objid",
			Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
		},
		Generator: Generator{
			Size:  objid.DefaultSize,
			Count: 1,
		},
	}
}

// ReadConfig from config file.
// Values missing in main.toml keep their Default.
func ReadConfig(path string) (Config, error) {
	var (
		c             = Default()
		JSONConfigEnv string
		err           error
	)

	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(filepath.Join(path, "main.toml"), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, Validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode %s", EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Validate checks the config struct tags. Every failing field is listed in
// the returned error, which wraps ErrInvalidConfig.
func Validate(c *Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "can not validate config")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}

	return errors.Wrap(ErrInvalidConfig, strings.Join(fields, ", "))
}
