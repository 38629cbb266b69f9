package registry

import (
	"fmt"
	"math"
	"sync"

	"github.com/arthur-debert/seqmatch/pkg/errors"
)

// Ordered is a generic, thread-safe registry whose items keep a caller
// controlled order
type Ordered[T any] interface {
	// Append adds an item at the end of the order
	Append(name string, item T) error

	// Insert adds an item at the given position (0 = first). A position at
	// or past the end appends.
	Insert(pos int, name string, item T) error

	// Get retrieves an item by name
	Get(name string) (T, error)

	// Index returns an item's position in the order, or -1 if absent
	Index(name string) int

	// Remove removes an item by name
	Remove(name string) error

	// Items returns all items in order
	Items() []T

	// Names returns all registered names in order
	Names() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

// entry pairs a name with its item
type entry[T any] struct {
	name string
	item T
}

// ordered is the internal implementation of Ordered
type ordered[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
}

// New creates a new empty Ordered registry
func New[T any]() Ordered[T] {
	return &ordered[T]{}
}

// Append adds an item at the end of the order
func (r *ordered[T]) Append(name string, item T) error {
	return r.Insert(math.MaxInt, name, item)
}

// Insert adds an item at the given position
func (r *ordered[T]) Insert(pos int, name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}
	if pos < 0 {
		return errors.Newf(errors.ErrInvalidInput, "negative registry position %d", pos)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(name) >= 0 {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	if pos > len(r.entries) {
		pos = len(r.entries)
	}
	r.entries = append(r.entries, entry[T]{})
	copy(r.entries[pos+1:], r.entries[pos:])
	r.entries[pos] = entry[T]{name: name, item: item}
	return nil
}

// Get retrieves an item by name
func (r *ordered[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(name); i >= 0 {
		return r.entries[i].item, nil
	}
	var zero T
	return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
}

// Index returns an item's position in the order
func (r *ordered[T]) Index(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.index(name)
}

// index is the lock-free lookup shared by the public methods
func (r *ordered[T]) index(name string) int {
	for i, e := range r.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}

// Remove removes an item by name
func (r *ordered[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(name)
	if i < 0 {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return nil
}

// Items returns all items in order
func (r *ordered[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.entries))
	for i, e := range r.entries {
		items[i] = e.item
	}
	return items
}

// Names returns all registered names in order
func (r *ordered[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Has checks if an item is registered
func (r *ordered[T]) Has(name string) bool {
	return r.Index(name) >= 0
}

// Count returns the number of registered items
func (r *ordered[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// MustAppend appends an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustAppend[T any](reg Ordered[T], name string, item T) {
	if err := reg.Append(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
