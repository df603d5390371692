package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objid/objid/app"
	"github.com/objid/objid/internal/config"
	"github.com/objid/objid/pkg/objid"
)

// run executes the command tree with args and returns stdout split into lines.
func run(t *testing.T, args ...string) ([]string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := app.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return strings.Fields(out.String()), err
}

func TestGenerateDefaults(t *testing.T) {
	ids, err := run(t, "generate")
	require.NoError(t, err)
	require.Len(t, ids, 1)

	assert.Len(t, ids[0], objid.DefaultSize)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, ids[0])
}

func TestGenerateFlags(t *testing.T) {
	ids, err := run(t, "gen", "--size", "10", "--alphabet", "0123456789", "--count", "5")
	require.NoError(t, err)
	require.Len(t, ids, 5)

	for _, id := range ids {
		assert.Regexp(t, `^[0-9]{10}$`, id)
	}
}

func TestGenerateSingleCharacterAlphabet(t *testing.T) {
	ids, err := run(t, "generate", "-a", "A", "-s", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAAA"}, ids)
}

func TestGenerateEnv(t *testing.T) {
	t.Setenv("OBJID_SIZE", "7")
	t.Setenv("OBJID_COUNT", "3")
	t.Setenv("OBJID_ALPHABET", "ab")

	ids, err := run(t, "generate")
	require.NoError(t, err)
	require.Len(t, ids, 3)

	for _, id := range ids {
		assert.Regexp(t, `^[ab]{7}$`, id)
	}

	// flags win over env
	ids, err = run(t, "generate", "--size", "4")
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Len(t, ids[0], 4)
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "[Generator]\nalphabet = \"xyz\"\nsize = 12\ncount = 2\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	ids, err := run(t, "generate", "--config", dir)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	for _, id := range ids {
		assert.Regexp(t, `^[xyz]{12}$`, id)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"zero size", []string{"generate", "--size", "0"}, objid.ErrInvalidSize},
		{"fractional size", []string{"generate", "--size", "1.5"}, objid.ErrInvalidSize},
		{"non-numeric size", []string{"generate", "--size", "ten"}, objid.ErrInvalidSize},
		{"alphabet too long", []string{"generate", "--alphabet", strings.Repeat("x", 257)}, objid.ErrInvalidAlphabet},
		{"zero count", []string{"generate", "--count=0"}, app.ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := run(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, ids)
		})
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	t.Setenv(config.EnvConfigJSON, `{"Generator":{"count":0}}`)

	_, err := run(t, "generate", "--config", filepath.Join("..", "etc"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigDump(t *testing.T) {
	var out bytes.Buffer

	cmd := app.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[Generator]")

	out.Reset()

	cmd = app.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--json", "--log-level", "error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"LogLevel": "error"`)
}
