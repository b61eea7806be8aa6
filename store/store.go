package store

import (
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Mapping is the associative collection the rest of the module is written
// against. Keys are unique; Keys and Values return fresh slices in no
// particular order.
type Mapping[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (V, error)
	Has(key K) bool
	Delete(key K) error
	Keys() []K
	Values() []V
	Len() int
	Clear()
}

// In memory key value store.
type Store[K comparable, V any] struct {
	data map[K]V
}

var _ Mapping[string, string] = (*Store[string, string])(nil)

// To initialize a new Store
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// Insert OR Update a value.
func (s *Store[K, V]) Set(key K, value V) {
	s.data[key] = value
}

// Get the value for a key or return an error.
func (s *Store[K, V]) Get(key K) (V, error) {
	value, ok := s.data[key]

	if ok {
		return value, nil
	}

	var zero V
	return zero, ErrKeyNotFound
}

func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.data[key]
	return ok
}

// Delete a key from the store.
func (s *Store[K, V]) Delete(key K) error {
	_, ok := s.data[key]

	if ok {
		delete(s.data, key)
		return nil
	}

	return ErrKeyNotFound
}

func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store[K, V]) Values() []V {
	values := make([]V, 0, len(s.data))
	for _, v := range s.data {
		values = append(values, v)
	}
	return values
}

func (s *Store[K, V]) Len() int {
	return len(s.data)
}

// Clear drops every entry but keeps the store usable.
func (s *Store[K, V]) Clear() {
	clear(s.data)
}
