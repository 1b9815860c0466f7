// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"

	"github.com/randtok/randtok"
	"github.com/randtok/randtok/internal/logger"
)

// EnvConfigJSON names the environment variable holding a JSON override that
// is merged over the TOML file, for container deployments.
const EnvConfigJSON = "RANDTOK_CONFIG_JSON"

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	if _, err := toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if jsonEnv := os.Getenv(EnvConfigJSON); jsonEnv != "" {
		if err := json.Unmarshal([]byte(jsonEnv), &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to merge json config override")
		}
	}

	return c, validate(&c)
}

// Default returns a config usable without any config file: console logging
// and standard token settings. The generate command runs on this when no
// --config flag is given.
func Default() Config {
	c := Config{
		Title: "randtok",
		Log: logger.Log{
			LogLevel:    "info",
			AppName:     "randtok",
			ServiceName: "randtok",
			Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
		},
	}

	applyTokenDefaults(&c.Token)

	return c
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal settings needed for serve mode, defaulting what it can.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	applyTokenDefaults(&c.Token)

	return nil
}

func applyTokenDefaults(t *Token) {
	if t.Charset == "" {
		t.Charset = randtok.Alphanumeric
	}

	if t.Length <= 0 {
		t.Length = randtok.StdLen
	}

	if t.Count <= 0 {
		t.Count = 1
	}

	if t.MaxLength <= 0 {
		t.MaxLength = 1024
	}

	if t.MaxCount <= 0 {
		t.MaxCount = 100
	}
}
