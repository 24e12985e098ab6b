package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFile represents the structure of a pattern file.
type YAMLFile struct {
	Patterns []YAMLPattern `yaml:"patterns"`
}

// YAMLPattern represents one pattern in YAML format.
type YAMLPattern struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Rows        []string `yaml:"rows"`
}

// ParseYAML parses a pattern file.
func ParseYAML(data []byte) ([]Pattern, error) {
	var f YAMLFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	result := make([]Pattern, 0, len(f.Patterns))
	for _, yp := range f.Patterns {
		p := Pattern{
			Name:        strings.TrimSpace(yp.Name),
			Title:       yp.Title,
			Description: yp.Description,
			Rows:        yp.Rows,
		}
		if p.Title == "" {
			p.Title = p.Name
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func isSupportedExtension(ext string) bool {
	for _, e := range FormatExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// LoadDir registers every pattern found in YAML files directly inside dir,
// in file name order. A missing directory is not an error.
// Returns the number of patterns added.
func LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("registry: cannot read %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	added := 0
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return added, fmt.Errorf("registry: cannot read %s: %w", path, err)
		}
		parsed, err := ParseYAML(data)
		if err != nil {
			return added, fmt.Errorf("registry: %s: %w", path, err)
		}
		for _, p := range parsed {
			if err := Add(p); err != nil {
				return added, fmt.Errorf("registry: %s: %w", path, err)
			}
			added++
		}
	}
	return added, nil
}
