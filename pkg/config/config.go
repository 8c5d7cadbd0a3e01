package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coltonb-mixpanel/import-sorter/pkg/errors"
	"github.com/coltonb-mixpanel/import-sorter/pkg/sorter"
)

// File is the on-disk YAML shape of the sorting configuration.
type File struct {
	SortEnabled    *bool  `yaml:"sort_enabled"`    // nil means "use the default"
	NamespaceFirst bool   `yaml:"namespace_first"` // place namespace-style imports first
	LengthMode     string `yaml:"length_mode"`     // none, asc, ascending, desc, descending
}

// Default returns the options used when no configuration is supplied.
func Default() sorter.Options {
	return sorter.Options{Enabled: true}
}

// Load reads a YAML configuration file and validates it into sorter options.
func Load(path string) (sorter.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sorter.Options{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
	}
	return Parse(data)
}

// Parse validates raw YAML configuration bytes into sorter options. The
// sorter assumes validated options, so all rejection happens here.
func Parse(data []byte) (sorter.Options, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return sorter.Options{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}

	opts := Default()
	if f.SortEnabled != nil {
		opts.Enabled = *f.SortEnabled
	}
	opts.NamespaceFirst = f.NamespaceFirst
	if f.LengthMode != "" {
		mode, err := ParseLengthMode(f.LengthMode)
		if err != nil {
			return sorter.Options{}, err
		}
		opts.LengthMode = mode
	}
	return opts, nil
}

// ParseLengthMode maps a configuration value onto a length mode.
func ParseLengthMode(value string) (sorter.LengthMode, error) {
	switch value {
	case "", "none":
		return sorter.LengthNone, nil
	case "asc", "ascending":
		return sorter.LengthAscending, nil
	case "desc", "descending":
		return sorter.LengthDescending, nil
	default:
		return sorter.LengthNone, fmt.Errorf(errors.ErrMsgUnknownLengthMode, value)
	}
}
