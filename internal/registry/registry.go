// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions; the CLI looks them up
// by id and applies them on top of the loaded configuration.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ErrUnknownVariant is returned for an id that was never registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Tweak modifies a configuration in place.
type Tweak func(cfg *config.Config)

// Variant is a named configuration preset.
type Variant struct {
	ID          string // Used on the command line, e.g. "classic"
	Title       string
	Description string
	Tweak       Tweak // Nil leaves the configuration unchanged
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if the id is empty or already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant id must not be empty")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		result = append(result, VariantInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Apply returns cfg with the named variant applied.
// The result is validated so a variant cannot produce an unplayable board.
func Apply(id string, cfg config.Config) (config.Config, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return cfg, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	if v.Tweak != nil {
		v.Tweak(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return cfg, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
