package config

import (
	"github.com/randtok/randtok/internal/logger"
)

// Token configures what the token endpoints and the generate command emit.
type Token struct {
	Charset string `toml:"charset"` // alphabet to draw from
	Runes   bool   `toml:"runes"`   // draw rune-wise for multi-byte alphabets
	Length  int    `toml:"length"`  // default token length
	Count   int    `toml:"count"`   // default number of tokens per request

	// serve-mode caps for caller-supplied length and count
	MaxLength int `toml:"maxLength"`
	MaxCount  int `toml:"maxCount"`
}

// Webserver implements webserver settings.
type Webserver struct {
	Port         int    `toml:"port"`         // listening port
	URL          string `toml:"url"`          // base url
	ShutDownTime int    `toml:"shutDownTime"` // seconds to drain before shutdown
}

// Config overall data structure.
type Config struct {
	DevMode   bool   // enable dev mode for development
	Title     string `toml:"title"`
	Token     Token  `toml:"token"`
	Log       logger.Log
	Webserver Webserver `toml:"webserver"`
}
