package scpi

import (
	"fmt"
	"sort"
	"strings"
)

// Enum is a bidirectional codec between a closed set of domain values
// and the instrument's literal tokens. Encode emits the fixed-case
// token; decode compares case-insensitively.
//
// One Enum table is shared across all indexed instances of a subsystem
// template (all four channels use the same coupling table). Subsystems
// that accept a narrower subset derive their own table via Restrict.
type Enum[T comparable] struct {
	name   string
	tokens map[T]string
	values map[string]T
}

// NewEnum creates an enum codec. name identifies the attribute in error
// messages; tokens maps every legal domain value to its wire token.
func NewEnum[T comparable](name string, tokens map[T]string) *Enum[T] {
	e := &Enum[T]{
		name:   name,
		tokens: make(map[T]string, len(tokens)),
		values: make(map[string]T, len(tokens)),
	}
	for v, tok := range tokens {
		e.tokens[v] = tok
		e.values[strings.ToUpper(tok)] = v
	}
	return e
}

// Name returns the attribute name this enum encodes.
func (e *Enum[T]) Name() string { return e.name }

// Encode returns the wire token for v. A value outside the declared set
// fails with ErrInvalidValue before any transport call.
func (e *Enum[T]) Encode(v T) (string, error) {
	tok, ok := e.tokens[v]
	if !ok {
		return "", fmt.Errorf("%w: %v is not a valid %s", ErrInvalidValue, v, e.name)
	}
	return tok, nil
}

// Decode returns the domain value for a wire token, compared
// case-insensitively. An unknown token fails with ErrMalformedResponse.
func (e *Enum[T]) Decode(s string) (T, error) {
	v, ok := e.values[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q is not a valid %s", ErrMalformedResponse, s, e.name)
	}
	return v, nil
}

// Token returns the wire token for v, or "UNKNOWN" for values outside
// the set. Intended for String() methods on enum types.
func (e *Enum[T]) Token(v T) string {
	tok, ok := e.tokens[v]
	if !ok {
		return "UNKNOWN"
	}
	return tok
}

// Tokens returns the declared wire tokens in sorted order.
func (e *Enum[T]) Tokens() []string {
	out := make([]string, 0, len(e.tokens))
	for _, tok := range e.tokens {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether v is a member of the declared set.
func (e *Enum[T]) Contains(v T) bool {
	_, ok := e.tokens[v]
	return ok
}

// Restrict returns a new enum limited to the given members, for
// subsystems or instrument models that accept only a subset of the
// shared table. Members missing from the parent table are ignored.
func (e *Enum[T]) Restrict(name string, members ...T) *Enum[T] {
	tokens := make(map[T]string, len(members))
	for _, m := range members {
		if tok, ok := e.tokens[m]; ok {
			tokens[m] = tok
		}
	}
	return NewEnum(name, tokens)
}

// RestrictTokens returns a new enum limited to members whose wire
// tokens appear in the given list, compared case-insensitively. Used to
// apply capability profiles, which declare option sets as raw tokens.
func (e *Enum[T]) RestrictTokens(name string, toks []string) *Enum[T] {
	want := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		want[strings.ToUpper(t)] = struct{}{}
	}
	tokens := make(map[T]string)
	for v, tok := range e.tokens {
		if _, ok := want[strings.ToUpper(tok)]; ok {
			tokens[v] = tok
		}
	}
	return NewEnum(name, tokens)
}
