package card11

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes the PKCS#11 module hosting the shim.
type Config struct {
	// Path specifies the shared library location
	Path string `json:"path" yaml:"path"`
	// TokenLabel specifies the token label to use
	TokenLabel string `json:"token_label" yaml:"token_label"`
	// TokenSerial specifies the token serial to use
	TokenSerial string `json:"token_serial" yaml:"token_serial"`
	// Pin specifies the user PIN
	Pin string `json:"pin" yaml:"pin"`
}

// LoadConfig returns configuration loaded from a YAML file.
func LoadConfig(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, errors.WithMessagef(err, "unable to parse config: %s", file)
	}
	if cfg.Path == "" {
		return nil, errors.Errorf("missing module path: %s", file)
	}
	return &cfg, nil
}
