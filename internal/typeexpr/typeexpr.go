// Package typeexpr parses the declared-type grammar used in data field
// declarations:
//
//	T                 named type, passed through as written ("String", "List<Int>")
//	T?                optional
//	Array(T)          ordered collection
//	Dictionary(K,V)   keyed collection
//	(T1,T2) -> R      callback, optionally wrapped again: ((T1) -> R)?
//
// Splitting is bracket-aware: commas and arrows nested inside (), [] or <>
// never split the enclosing expression.
package typeexpr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a parsed expression.
type Kind int

const (
	KindNamed Kind = iota
	KindArray
	KindDictionary
	KindCallback
)

// ErrSyntax is returned for expressions that do not fit the grammar.
var ErrSyntax = errors.New("invalid type expression")

// Expr is a parsed type expression.
type Expr struct {
	Kind     Kind
	Name     string // KindNamed
	Optional bool
	Elem     *Expr   // KindArray
	Key      *Expr   // KindDictionary
	Value    *Expr   // KindDictionary
	Params   []*Expr // KindCallback
	Result   *Expr   // KindCallback
}

// IsCallback reports whether e is a callback type.
func (e *Expr) IsCallback() bool {
	return e != nil && e.Kind == KindCallback
}

// String renders e back in source grammar.
func (e *Expr) String() string {
	var sb strings.Builder

	switch e.Kind {
	case KindArray:
		sb.WriteString("Array(" + e.Elem.String() + ")")
	case KindDictionary:
		sb.WriteString("Dictionary(" + e.Key.String() + "," + e.Value.String() + ")")
	case KindCallback:
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			params[i] = p.String()
		}

		cb := "(" + strings.Join(params, ",") + ") -> " + e.Result.String()
		if e.Optional {
			return "(" + cb + ")?"
		}

		return cb
	default:
		sb.WriteString(e.Name)
	}

	if e.Optional {
		sb.WriteString("?")
	}

	return sb.String()
}

// Parse parses a declared type.
func Parse(s string) (*Expr, error) {
	e, err := parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrSyntax, s, err)
	}

	return e, nil
}

func parse(s string) (*Expr, error) {
	if s == "" {
		return nil, errors.New("empty type")
	}

	// A top-level arrow makes the whole expression a callback; its result
	// keeps its own trailing "?".
	if left, right, ok := splitArrow(s); ok {
		return parseCallback(left, right)
	}

	optional := false
	if strings.HasSuffix(s, "?") {
		optional = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "?"))
	}

	e, err := parseBase(s)
	if err != nil {
		return nil, err
	}

	if optional {
		e.Optional = true
	}

	return e, nil
}

func parseBase(s string) (*Expr, error) {
	if s == "" {
		return nil, errors.New("empty type")
	}

	if inner, ok := unwrap(s, "(", ")"); ok {
		if strings.TrimSpace(inner) == "" {
			return nil, errors.New("empty parameter list without \"->\"")
		}

		if len(splitTopLevel(inner, ',')) > 1 {
			return nil, fmt.Errorf("tuple %q is not a type", s)
		}

		return parse(strings.TrimSpace(inner))
	}

	if inner, ok := unwrapCall(s, "Array"); ok {
		elem, err := parse(strings.TrimSpace(inner))
		if err != nil {
			return nil, fmt.Errorf("array element: %w", err)
		}

		return &Expr{Kind: KindArray, Elem: elem}, nil
	}

	if inner, ok := unwrapCall(s, "Dictionary"); ok {
		parts := splitTopLevel(inner, ',')
		if len(parts) != 2 {
			return nil, fmt.Errorf("dictionary needs key and value, got %d argument(s)", len(parts))
		}

		key, err := parse(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("dictionary key: %w", err)
		}

		value, err := parse(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("dictionary value: %w", err)
		}

		return &Expr{Kind: KindDictionary, Key: key, Value: value}, nil
	}

	if !balanced(s) {
		return nil, fmt.Errorf("unbalanced brackets in %q", s)
	}

	return &Expr{Kind: KindNamed, Name: s}, nil
}

func parseCallback(left, right string) (*Expr, error) {
	inner, ok := unwrap(left, "(", ")")
	if !ok {
		return nil, fmt.Errorf("callback parameters must be parenthesized, got %q", left)
	}

	var params []*Expr

	if strings.TrimSpace(inner) != "" {
		for _, part := range splitTopLevel(inner, ',') {
			p, err := parse(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("callback parameter: %w", err)
			}

			params = append(params, p)
		}
	}

	result, err := parse(right)
	if err != nil {
		return nil, fmt.Errorf("callback result: %w", err)
	}

	return &Expr{Kind: KindCallback, Params: params, Result: result}, nil
}

// scan calls fn for every byte of s at bracket depth zero. fn receives the
// index; returning false stops the scan. The "->" arrow never counts as a
// closing angle bracket.
func scan(s string, fn func(i int) bool) {
	depth := 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '-' && i+1 < len(s) && s[i+1] == '>':
			if depth == 0 && !fn(i) {
				return
			}

			i++

			continue
		case c == '(' || c == '[' || c == '<':
			depth++

			continue
		case c == ')' || c == ']' || c == '>':
			depth--

			continue
		}

		if depth == 0 && !fn(i) {
			return
		}
	}
}

func splitArrow(s string) (string, string, bool) {
	at := -1

	scan(s, func(i int) bool {
		if strings.HasPrefix(s[i:], "->") {
			at = i
			return false
		}

		return true
	})

	if at < 0 {
		return "", "", false
	}

	return strings.TrimSpace(s[:at]), strings.TrimSpace(s[at+2:]), true
}

func splitTopLevel(s string, sep byte) []string {
	var parts []string

	start := 0

	scan(s, func(i int) bool {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}

		return true
	})

	return append(parts, s[start:])
}

// unwrap strips one pair of open/close delimiters when they enclose all of s.
func unwrap(s, open, closing string) (string, bool) {
	if !strings.HasPrefix(s, open) || !strings.HasSuffix(s, closing) {
		return "", false
	}

	if matchingClose(s, 0) != len(s)-1 {
		return "", false
	}

	return s[len(open) : len(s)-len(closing)], true
}

// unwrapCall matches "Name(...)" enclosing all of s.
func unwrapCall(s, name string) (string, bool) {
	if !strings.HasPrefix(s, name) {
		return "", false
	}

	rest := strings.TrimSpace(s[len(name):])

	return unwrap(rest, "(", ")")
}

// matchingClose returns the index of the bracket closing the one at open,
// or -1.
func matchingClose(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func balanced(s string) bool {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '<':
			depth++
		case ')', ']':
			depth--
		case '>':
			if i > 0 && s[i-1] == '-' {
				continue
			}

			depth--
		}

		if depth < 0 {
			return false
		}
	}

	return depth == 0
}
