package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siuubhamm/reversed_kvstore/kvstore"
)

func runScript(t *testing.T, m container, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, newSession(m, &out).run(context.Background(), strings.NewReader(script)))
	return out.String()
}

func TestSession(t *testing.T) {
	t.Run("queries", func(t *testing.T) {
		out := runScript(t, kvstore.New(), `
insert hola
insert ab
keys
values
first
last
distinct
len
containsall aloh ba
containsall hola
get aloh
get missing
dump
`)
		assert.Equal(t, strings.Join([]string{
			"OK", "OK",
			"ba", "aloh", "END",
			"ab", "hola", "END",
			"aloh",
			"ba",
			"2",
			"2",
			"true",
			"false",
			"hola",
			"NIL",
			"aloh hola", "ba ab", "END",
		}, "\n")+"\n", out)
	})

	t.Run("empty map", func(t *testing.T) {
		out := runScript(t, kvstore.New(), "first\nlast\nvalues\n")
		assert.Equal(t, "NIL\nNIL\nEND\n", out)
	})

	t.Run("mutations", func(t *testing.T) {
		m := kvstore.New()
		runScript(t, m, `
reset 1 2 2 x
delkey x
insert Ab
insert ab
upper
delval nothing
`)
		snap := m.Snapshot()
		assert.Len(t, snap, 3)
		assert.Equal(t, "1", snap["1"])
		assert.Equal(t, "2", snap["2"])
		assert.Contains(t, []string{"Ab", "ab"}, snap["BA"])

		runScript(t, m, "delval 1\n")
		assert.Equal(t, 2, m.Len())
	})

	t.Run("quit stops reading", func(t *testing.T) {
		m := kvstore.New()
		out := runScript(t, m, "insert a\nQUIT\ninsert b\n")
		assert.Equal(t, "OK\n", out)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("works over the locked map", func(t *testing.T) {
		out := runScript(t, kvstore.NewLocked(nil), "insert xy\nallkeys\n")
		assert.Equal(t, "OK\nyx\nEND\n", out)
	})
}

func TestSession_Errors(t *testing.T) {
	var out bytes.Buffer
	s := newSession(kvstore.New(), &out)

	t.Run("unknown command", func(t *testing.T) {
		out.Reset()
		err := s.handle("frobnicate 1")
		assert.True(t, errors.Is(err, errUnknownCmd))
		assert.Equal(t, "ERROR frobnicate\n", out.String())
	})

	t.Run("wrong arity", func(t *testing.T) {
		for _, line := range []string{"insert", "insert a b", "delkey", "delval", "upper now", "get"} {
			out.Reset()
			err := s.handle(line)
			assert.True(t, errors.Is(err, errBadFormat), line)
			assert.Equal(t, "CLIENT_ERROR bad command line format\n", out.String(), line)
		}
	})

	t.Run("blank line", func(t *testing.T) {
		out.Reset()
		assert.NoError(t, s.handle("   "))
		assert.Empty(t, out.String())
	})

	t.Run("session continues after errors", func(t *testing.T) {
		got := runScript(t, kvstore.New(), "bogus\ninsert ok\nlen\n")
		assert.Equal(t, "ERROR bogus\nOK\n1\n", got)
	})
}
