package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits mirrors lexer storage caps; zero means unbounded.
type Limits struct {
	MaxTokens int `yaml:"max_tokens"`
	MaxLexeme int `yaml:"max_lexeme"`
}

// Config is the optional gama.yaml file next to the program being run.
type Config struct {
	Limits  Limits `yaml:"limits"`
	ObjPath string `yaml:"obj_path"`
}

// Default returns the built-in configuration: unbounded limits and the
// conventional artifact name.
func Default() Config {
	return Config{ObjPath: "lexico.obj"}
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("leer configuracion %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("configuracion invalida %s: %w", path, err)
	}
	if cfg.ObjPath == "" {
		cfg.ObjPath = Default().ObjPath
	}
	return cfg, nil
}
