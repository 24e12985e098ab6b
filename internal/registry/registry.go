// Package registry provides a global registry of seed patterns.
// Built-in patterns register themselves from embedded YAML in init(); users
// can add more from a directory of YAML files. Patterns only choose the
// starting cells of a run, the rules stay the same.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPattern is returned when a pattern name is not registered.
var ErrUnknownPattern = errors.New("registry: unknown pattern")

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	Name        string
	Title       string
	Description string
	Height      int
	Width       int
}

var (
	patterns = make(map[string]Pattern)
	mu       sync.RWMutex
)

// Add registers a pattern. It fails if the pattern is invalid or the name is
// already taken.
func Add(p Pattern) error {
	if err := p.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[p.Name]; exists {
		return fmt.Errorf("registry: pattern %q already registered", p.Name)
	}
	patterns[p.Name] = p
	return nil
}

// Register adds a pattern and panics on failure.
// Typically called from an init() function with built-in patterns.
func Register(p Pattern) {
	if err := Add(p); err != nil {
		panic(err)
	}
}

// List returns information about all registered patterns, sorted by name.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(patterns))
	for _, p := range patterns {
		result = append(result, PatternInfo{
			Name:        p.Name,
			Title:       p.Title,
			Description: p.Description,
			Height:      p.Height(),
			Width:       p.Width(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the pattern registered under name.
func Get(name string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}
