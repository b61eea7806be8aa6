package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/siuubhamm/reversed_kvstore/ctxlog"
)

var (
	errQuit       = errors.New("quit")
	errBadFormat  = errors.New("bad command line format")
	errUnknownCmd = errors.New("unknown command")
)

// container is the method set shared by kvstore.ReversedStringMap and
// kvstore.Locked.
type container interface {
	ValuesSorted() []string
	KeysSortedDesc() []string
	FirstKey() (string, bool)
	LastKey() (string, bool)
	Keys() []string
	DistinctValues() int
	ContainsAllKeys(candidates ...string) bool
	Insert(value string)
	RemoveKey(key string)
	RemoveValue(value string)
	ResetFrom(objects ...any)
	UppercaseKeys()
	Get(key string) (string, bool)
	Len() int
	Snapshot() map[string]string
}

type session struct {
	m   container
	out io.Writer
}

func newSession(m container, out io.Writer) *session {
	return &session{m: m, out: out}
}

// run executes one command per line from in until EOF or quit.
func (s *session) run(ctx context.Context, in io.Reader) error {
	logger := ctxlog.FromContext(ctx)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		err := s.handle(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			logger.Debug("command failed", "line", scanner.Text(), "err", err)
		}
	}
	return errors.Wrap(scanner.Err(), "reading commands")
}

// handle runs a single command line. Failures are written to the output
// as well as returned; the session carries on after them.
func (s *session) handle(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "insert":
		return s.mutate(args, 1, func() { s.m.Insert(args[0]) })
	case "delkey":
		return s.mutate(args, 1, func() { s.m.RemoveKey(args[0]) })
	case "delval":
		return s.mutate(args, 1, func() { s.m.RemoveValue(args[0]) })
	case "upper":
		return s.mutate(args, 0, s.m.UppercaseKeys)
	case "reset":
		objects := make([]any, len(args))
		for i, a := range args {
			objects[i] = a
		}
		s.m.ResetFrom(objects...)
		s.println("OK")
	case "values":
		s.list(s.m.ValuesSorted())
	case "keys":
		s.list(s.m.KeysSortedDesc())
	case "allkeys":
		s.list(s.m.Keys())
	case "first":
		s.optional(s.m.FirstKey())
	case "last":
		s.optional(s.m.LastKey())
	case "distinct":
		s.println(strconv.Itoa(s.m.DistinctValues()))
	case "len":
		s.println(strconv.Itoa(s.m.Len()))
	case "containsall":
		s.println(strconv.FormatBool(s.m.ContainsAllKeys(args...)))
	case "get":
		if len(args) != 1 {
			return s.clientError(command)
		}
		s.optional(s.m.Get(args[0]))
	case "dump":
		s.dump()
	case "quit":
		return errQuit
	default:
		s.println("ERROR " + command)
		return errors.Wrap(errUnknownCmd, command)
	}
	return nil
}

func (s *session) mutate(args []string, want int, apply func()) error {
	if len(args) != want {
		return s.clientError("")
	}
	apply()
	s.println("OK")
	return nil
}

func (s *session) clientError(command string) error {
	s.println("CLIENT_ERROR " + errBadFormat.Error())
	if command == "" {
		return errBadFormat
	}
	return errors.Wrap(errBadFormat, command)
}

func (s *session) list(items []string) {
	for _, item := range items {
		s.println(item)
	}
	s.println("END")
}

func (s *session) optional(v string, ok bool) {
	if !ok {
		s.println("NIL")
		return
	}
	s.println(v)
}

func (s *session) dump() {
	snap := s.m.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(s.out, "%s %s\n", k, snap[k])
	}
	s.println("END")
}

func (s *session) println(line string) {
	io.WriteString(s.out, line+"\n")
}
