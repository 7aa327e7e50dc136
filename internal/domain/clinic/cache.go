package clinic

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	cacheVets     = "vets"
	cachePetTypes = "pettypes"
)

// KindCache guarda listados read-mostly por tipo de entidad.
// Cualquier escritura sobre el tipo invalida la entrada completa.
type KindCache struct {
	entries *lru.Cache[string, any]
	observe func(kind string, hit bool)
}

func NewKindCache(size int) (*KindCache, error) {
	entries, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("kind cache: %w", err)
	}
	return &KindCache{entries: entries}, nil
}

// OnLookup registra un callback por cada Get (ej: métricas hit/miss).
func (c *KindCache) OnLookup(fn func(kind string, hit bool)) {
	c.observe = fn
}

func (c *KindCache) Get(kind string) (any, bool) {
	v, ok := c.entries.Get(kind)
	if c.observe != nil {
		c.observe(kind, ok)
	}
	return v, ok
}

func (c *KindCache) Add(kind string, v any) {
	c.entries.Add(kind, v)
}

func (c *KindCache) Invalidate(kind string) {
	c.entries.Remove(kind)
}
