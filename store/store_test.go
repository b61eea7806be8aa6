package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := NewStore[string, string]()

	s.Set("foo", "bar")

	val, err := s.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", val)
	assert.True(t, s.Has("foo"))

	err = s.Delete("foo")
	assert.NoError(t, err)

	_, err = s.Get("foo")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.False(t, s.Has("foo"))
}

func TestStore_Delete(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		s := NewStore[string, int]()
		assert.ErrorIs(t, s.Delete("nope"), ErrKeyNotFound)
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_KeysValues(t *testing.T) {
	s := NewStore[string, string]()
	s.Set("a", "1")
	s.Set("b", "2")
	s.Set("c", "2")

	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.Keys())
	assert.ElementsMatch(t, []string{"1", "2", "2"}, s.Values())
	assert.Equal(t, 3, s.Len())

	t.Run("snapshots are detached", func(t *testing.T) {
		keys := s.Keys()
		for _, k := range keys {
			assert.NoError(t, s.Delete(k))
		}
		assert.Len(t, keys, 3)
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[string, string]()
	s.Set("a", "1")
	s.Clear()
	assert.Equal(t, 0, s.Len())

	s.Set("b", "2")
	assert.Equal(t, 1, s.Len())
}
