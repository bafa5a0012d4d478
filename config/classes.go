package config

import (
	"class-notes/validator"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Roster is the school name and the classes offered in the sidebar
type Roster struct {
	School  string   `yaml:"school"`
	Classes []string `yaml:"classes"`
}

// DefaultRoster is used when no classes file exists
func DefaultRoster() *Roster {
	classes := []string{"Teacher's Application", "Class UKG"}
	for i := 1; i <= 10; i++ {
		classes = append(classes, fmt.Sprintf("Class %d", i))
	}
	return &Roster{School: "Pushpa High School", Classes: classes}
}

// LoadRoster reads a YAML roster. A missing file yields the default roster.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRoster(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read classes file: %w", err)
	}

	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse classes file: %w", err)
	}

	if err := roster.normalize(); err != nil {
		return nil, fmt.Errorf("classes file %s: %w", path, err)
	}

	return &roster, nil
}

func (r *Roster) normalize() error {
	if len(r.Classes) == 0 {
		return errors.New("at least one class is required")
	}

	v := validator.New()
	seen := make(map[string]bool, len(r.Classes))
	for i, name := range r.Classes {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("class %d has an empty name", i+1)
		}
		// Names that fail here could never be opened, added to or exported
		if err := v.ValidateClassName(name); err != nil {
			return fmt.Errorf("class %q: %w", name, err)
		}
		if seen[name] {
			return fmt.Errorf("class %q is listed twice", name)
		}
		seen[name] = true
		r.Classes[i] = name
	}

	if r.School == "" {
		r.School = DefaultRoster().School
	}

	return nil
}
