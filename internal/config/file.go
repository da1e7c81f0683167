package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// LoadFile decodes the TOML file at path over cfg. Keys absent from the
// file keep their current values; unknown keys are an error.
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return nil
}

// Load applies cfg.ConfigFile (when set) on top of the parsed flags, then
// re-applies every flag the user passed explicitly so the command line
// wins over the file, and finally validates.
func Load(fs *pflag.FlagSet, cfg *Config) error {
	if cfg.ConfigFile != "" {
		type setFlag struct{ name, value string }
		var explicit []setFlag
		fs.Visit(func(f *pflag.Flag) {
			// Repeatable flags append on Set and have no file key.
			if t := f.Value.Type(); strings.HasSuffix(t, "Slice") || strings.HasSuffix(t, "Array") {
				return
			}
			explicit = append(explicit, setFlag{f.Name, f.Value.String()})
		})

		if err := LoadFile(cfg.ConfigFile, cfg); err != nil {
			return err
		}
		for _, f := range explicit {
			if err := fs.Set(f.name, f.value); err != nil {
				return fmt.Errorf("re-apply --%s: %w", f.name, err)
			}
		}
	}
	return cfg.Validate()
}
