package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor HCL.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ReadFile decodes a YAML (.yaml, .yml) or HCL (.hcl) file into c. Keys
// missing from the file keep their current values.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	case ".hcl":
		if err := hclsimple.Decode(filepath.Base(path), data, nil, c); err != nil {
			return fmt.Errorf("hcl decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	return nil
}
