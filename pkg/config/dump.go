package config

import (
	"github.com/arthur-debert/graftree/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Dump renders settings in the format of the embedded defaults file
func Dump(s *Settings) (string, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render settings")
	}
	return string(data), nil
}
