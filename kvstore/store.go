// Package kvstore holds ReversedStringMap, a string map whose canonical
// insert keys every value by its own reversal.
package kvstore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/siuubhamm/reversed_kvstore/store"
)

// ReversedStringMap maps reverse(v) to v for every value inserted with
// Insert. ResetFrom and UppercaseKeys do not keep that relation.
//
// A ReversedStringMap is not safe for concurrent use; see Locked.
type ReversedStringMap struct {
	entries store.Mapping[string, string]
}

// New returns an empty map backed by a hash store.
func New() *ReversedStringMap {
	return NewWith(store.NewStore[string, string]())
}

// NewWith wraps m. The caller must not touch m afterwards.
func NewWith(m store.Mapping[string, string]) *ReversedStringMap {
	return &ReversedStringMap{
		entries: m,
	}
}

// ValuesSorted returns every value in ascending order. Equal values held
// under different keys appear once per key.
func (r *ReversedStringMap) ValuesSorted() []string {
	values := r.entries.Values()
	sort.Strings(values)
	return values
}

// KeysSortedDesc returns every key in descending order.
func (r *ReversedStringMap) KeysSortedDesc() []string {
	keys := r.entries.Keys()
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// FirstKey returns the smallest key, or false when the map is empty.
func (r *ReversedStringMap) FirstKey() (string, bool) {
	if r.entries.Len() == 0 {
		return "", false
	}
	keys := r.KeysSortedDesc()
	return keys[len(keys)-1], true
}

// LastKey returns the largest key, or false when the map is empty.
// It looks at keys, not values.
func (r *ReversedStringMap) LastKey() (string, bool) {
	if r.entries.Len() == 0 {
		return "", false
	}
	return r.KeysSortedDesc()[0], true
}

// Keys returns every key in no particular order.
func (r *ReversedStringMap) Keys() []string {
	return r.entries.Keys()
}

// DistinctValues counts values after dropping duplicates.
func (r *ReversedStringMap) DistinctValues() int {
	var seen []string
	for _, v := range r.entries.Values() {
		if !contains(seen, v) {
			seen = append(seen, v)
		}
	}
	return len(seen)
}

// ContainsAllKeys reports whether every candidate is present as a key.
// It is true for no candidates.
func (r *ReversedStringMap) ContainsAllKeys(candidates ...string) bool {
	for _, c := range candidates {
		if !r.entries.Has(c) {
			return false
		}
	}
	return true
}

// Insert stores value under Reverse(value), replacing whatever was there.
func (r *ReversedStringMap) Insert(value string) {
	r.entries.Set(Reverse(value), value)
}

// RemoveKey drops key if present.
func (r *ReversedStringMap) RemoveKey(key string) {
	_ = r.entries.Delete(key)
}

// RemoveValue drops every entry whose value equals value.
func (r *ReversedStringMap) RemoveValue(value string) {
	var doomed []string
	for _, k := range r.entries.Keys() {
		if v, err := r.entries.Get(k); err == nil && v == value {
			doomed = append(doomed, k)
		}
	}
	for _, k := range doomed {
		_ = r.entries.Delete(k)
	}
}

// ResetFrom empties the map, then stores the fmt.Sprint form of each
// object as both key and value, in order. Duplicates collapse.
func (r *ReversedStringMap) ResetFrom(objects ...any) {
	r.entries.Clear()
	for _, o := range objects {
		s := fmt.Sprint(o)
		r.entries.Set(s, s)
	}
}

// UppercaseKeys rekeys every entry under strings.ToUpper of its key.
// Entries already upper-case are left alone. When two keys fold to the
// same upper-case form the one processed last wins.
func (r *ReversedStringMap) UppercaseKeys() {
	type move struct {
		from, to, value string
	}
	var moves []move
	for _, k := range r.entries.Keys() {
		upper := strings.ToUpper(k)
		if upper == k {
			continue
		}
		v, err := r.entries.Get(k)
		if err != nil {
			continue
		}
		moves = append(moves, move{from: k, to: upper, value: v})
	}

	for _, m := range moves {
		r.entries.Set(m.to, m.value)
	}
	// a source key is never fully upper-case, so it cannot collide with a target
	for _, m := range moves {
		_ = r.entries.Delete(m.from)
	}
}

// Get returns the value stored under key.
func (r *ReversedStringMap) Get(key string) (string, bool) {
	v, err := r.entries.Get(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *ReversedStringMap) Len() int {
	return r.entries.Len()
}

// Snapshot copies the entries into a plain map.
func (r *ReversedStringMap) Snapshot() map[string]string {
	out := make(map[string]string, r.entries.Len())
	for _, k := range r.entries.Keys() {
		if v, err := r.entries.Get(k); err == nil {
			out[k] = v
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
