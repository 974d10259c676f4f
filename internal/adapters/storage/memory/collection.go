package memory

import (
	"fmt"
	"strings"
	"sync"
)

// Observer recibe mutaciones y tamaños de colección (métricas). Puede ser nil.
type Observer interface {
	StoreMutation(collection, op string)
	StoreSize(collection string, n int)
}

// collection es una lista ordenada por inserción con índice por id.
// Todas las escrituras (incluido el read-modify-write de update) van bajo mu.
type collection[T any] struct {
	name  string
	mu    sync.RWMutex
	items []T
	pos   map[string]int

	idOf  func(T) string
	clone func(T) T

	errNotFound error
	errExists   error

	obs Observer
}

func newCollection[T any](name string, idOf func(T) string, clone func(T) T, errNotFound, errExists error, obs Observer) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	c := &collection[T]{
		name:        name,
		pos:         make(map[string]int),
		idOf:        idOf,
		clone:       clone,
		errNotFound: errNotFound,
		errExists:   errExists,
		obs:         obs,
	}
	c.observeSize()
	return c
}

func (c *collection[T]) create(v T) error {
	id := c.idOf(v)
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: id required", c.name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pos[id]; exists {
		return c.errExists
	}
	c.pos[id] = len(c.items)
	c.items = append(c.items, c.clone(v))

	c.observe("create")
	return nil
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.pos[id]
	if !ok {
		var zero T
		return zero, c.errNotFound
	}
	return c.clone(c.items[i]), nil
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, c.clone(v))
	}
	return out
}

// update aplica fn bajo el lock de escritura. El id del registro no cambia.
func (c *collection[T]) update(id string, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.pos[id]
	if !ok {
		var zero T
		return zero, c.errNotFound
	}

	next := fn(c.clone(c.items[i]))
	if c.idOf(next) != id {
		var zero T
		return zero, fmt.Errorf("%s: update must not change id %q", c.name, id)
	}
	c.items[i] = c.clone(next)

	c.observe("update")
	return c.clone(next), nil
}

func (c *collection[T]) delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.pos[id]
	if !ok {
		return false
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.pos, id)
	for j := i; j < len(c.items); j++ {
		c.pos[c.idOf(c.items[j])] = j
	}

	c.observe("delete")
	return true
}

func (c *collection[T]) observe(op string) {
	if c.obs == nil {
		return
	}
	c.obs.StoreMutation(c.name, op)
	c.obs.StoreSize(c.name, len(c.items))
}

func (c *collection[T]) observeSize() {
	if c.obs == nil {
		return
	}
	c.obs.StoreSize(c.name, len(c.items))
}
