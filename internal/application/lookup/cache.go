// Package lookup implementa la memoria por clave de las tablas de consulta que
// alimentan los campos dependientes (colores por producto, subcategorías por
// categoría).
package lookup

import (
	"context"
	"sync"
)

// Loader obtiene las opciones de una clave (una petición al backend).
type Loader[T any] func(ctx context.Context, key string) ([]T, error)

// Cache memoriza por clave el resultado exitoso de Loader. Los fallos no se
// memorizan: la siguiente consulta de la misma clave vuelve a pedirla.
type Cache[T any] struct {
	load Loader[T]

	mu      sync.Mutex
	entries map[string][]T
}

// New construye la caché sobre load.
func New[T any](load Loader[T]) *Cache[T] {
	return &Cache[T]{load: load, entries: make(map[string][]T)}
}

// Get devuelve las opciones de key, pidiéndolas solo si no están memorizadas.
// El resultado es una copia: el llamador puede modificarlo.
func (c *Cache[T]) Get(ctx context.Context, key string) ([]T, error) {
	if key == "" {
		return []T{}, nil
	}
	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return clone(cached), nil
	}

	items, err := c.load(ctx, key)
	if err != nil {
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	c.mu.Lock()
	c.entries[key] = items
	c.mu.Unlock()
	return clone(items), nil
}

// Forget descarta una clave (o todas si key es vacío).
func (c *Cache[T]) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == "" {
		c.entries = make(map[string][]T)
		return
	}
	delete(c.entries, key)
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
