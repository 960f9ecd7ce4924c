package templates

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/templates.yaml
var builtinFS embed.FS

type libraryFile struct {
	Entries []Entry `yaml:"entries"`
}

// Load returns the built-in library. Panics only on a corrupted embedded
// file, which cannot happen for a released binary.
func Load() *Library {
	data, err := builtinFS.ReadFile("data/templates.yaml")
	if err != nil {
		panic(fmt.Sprintf("templates: embedded data missing: %v", err))
	}
	lib, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("templates: embedded data invalid: %v", err))
	}
	return lib
}

// LoadFile returns the built-in library extended with entries from an
// external YAML file. An empty path returns the built-ins only.
func LoadFile(path string) (*Library, error) {
	lib := Load()
	if path == "" {
		return lib, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template file: %w", err)
	}
	extra, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse template file: %w", err)
	}
	lib.entries = append(lib.entries, extra.entries...)
	return lib, nil
}

func parse(data []byte) (*Library, error) {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for i, e := range f.Entries {
		if e.Category == "" {
			return nil, fmt.Errorf("entry %d: missing category", i)
		}
		if e.Subtype == "" {
			return nil, fmt.Errorf("entry %d: missing subtype", i)
		}
	}
	return NewLibrary(f.Entries), nil
}
