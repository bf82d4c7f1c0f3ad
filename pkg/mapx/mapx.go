// Package mapx is an order-preserving string-keyed mapping used for
// generic structured documents. Key order is the insertion order, which
// for parsed documents means the order keys appear in the source.
package mapx

import "github.com/spf13/cast"

type Map struct {
	keys   []string
	values map[string]any
}

func New() *Map {
	return &Map{values: make(map[string]any)}
}

func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) String(key string) (string, bool) {
	value, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false
	}
	return s, true
}

func (m *Map) Int(key string) (int, bool) {
	value, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *Map) Float(key string) (float64, bool) {
	value, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (m *Map) Child(key string) (*Map, bool) {
	value, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := value.(*Map)
	return child, ok
}

func (m *Map) Slice(key string) ([]any, bool) {
	value, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	items, ok := value.([]any)
	return items, ok
}
