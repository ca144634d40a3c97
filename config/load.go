package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"
)

// Load overrides the defaults with values from an INI file. Each config
// struct maps to the section of the same name ([kernel], [physics],
// [fighter], [combat], [stage]); keys that are absent keep their defaults.
// A missing file is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	sections := []struct {
		name   string
		target interface{}
	}{
		{"kernel", &Kernel},
		{"physics", &Physics},
		{"fighter", &Fighter},
		{"combat", &Combat},
		{"stage", &Stage},
	}
	for _, s := range sections {
		if !file.HasSection(s.name) {
			continue
		}
		if err := file.Section(s.name).MapTo(s.target); err != nil {
			return fmt.Errorf("config section [%s]: %w", s.name, err)
		}
	}
	return nil
}
