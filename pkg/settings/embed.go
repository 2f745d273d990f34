package settings

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// DefaultSettingsContent returns the content of the embedded defaults
func DefaultSettingsContent() string {
	return string(defaultSettings)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
