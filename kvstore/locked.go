package kvstore

import (
	"sync"
)

// Locked guards a ReversedStringMap with one exclusive lock held for the
// whole of every call. RemoveValue and UppercaseKeys scan then mutate, so
// a read/write split would not help them.
type Locked struct {
	mu sync.Mutex
	m  *ReversedStringMap
}

// NewLocked wraps m, or a fresh map when m is nil.
func NewLocked(m *ReversedStringMap) *Locked {
	if m == nil {
		m = New()
	}
	return &Locked{m: m}
}

func (l *Locked) ValuesSorted() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.ValuesSorted()
}

func (l *Locked) KeysSortedDesc() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.KeysSortedDesc()
}

func (l *Locked) FirstKey() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.FirstKey()
}

func (l *Locked) LastKey() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.LastKey()
}

func (l *Locked) Keys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Keys()
}

func (l *Locked) DistinctValues() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.DistinctValues()
}

func (l *Locked) ContainsAllKeys(candidates ...string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.ContainsAllKeys(candidates...)
}

func (l *Locked) Insert(value string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.m.Insert(value)
}

func (l *Locked) RemoveKey(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.m.RemoveKey(key)
}

func (l *Locked) RemoveValue(value string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.m.RemoveValue(value)
}

func (l *Locked) ResetFrom(objects ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.m.ResetFrom(objects...)
}

func (l *Locked) UppercaseKeys() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.m.UppercaseKeys()
}

func (l *Locked) Get(key string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Get(key)
}

func (l *Locked) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Len()
}

func (l *Locked) Snapshot() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Snapshot()
}
