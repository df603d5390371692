package config

import (
	"github.com/objid/objid/internal/logger"
)

// Config overall data structure.
type Config struct {
	Log       logger.Log `toml:"Log"`
	Generator Generator  `toml:"Generator"`
}

// Generator holds the id generation defaults of the command line tool.
type Generator struct {
	Alphabet string `toml:"alphabet" json:"alphabet" validate:"max=256"` // empty uses objid.DefaultAlphabet
	Size     int    `toml:"size"     json:"size"     validate:"gte=1"`   // id length
	Count    int    `toml:"count"    json:"count"    validate:"gte=1"`   // ids per invocation
}
