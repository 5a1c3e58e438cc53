package component

import (
	"strconv"
	"strings"
)

// Path builds a readable attribute path string.
// Examples:
//   - "text" for an attribute on the root node
//   - "children[0].text" for an attribute on the first child
//   - "sections[1].cell.children[2].onClick" for a nested section cell
//   - "items[0].title" for a value nested inside an attribute
type Path struct {
	parts []string
}

// Root returns the empty path.
func Root() Path {
	return Path{}
}

// Field appends a key segment.
func (p Path) Field(name string) Path {
	return Path{parts: append(append([]string{}, p.parts...), name)}
}

// Index appends "[i]" to the last segment.
func (p Path) Index(i int) Path {
	idx := "[" + strconv.Itoa(i) + "]"

	if len(p.parts) == 0 {
		return Path{parts: []string{idx}}
	}

	parts := append([]string{}, p.parts...)
	parts[len(parts)-1] += idx

	return Path{parts: parts}
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.parts) == 0
}

// String returns the dotted path.
func (p Path) String() string {
	return strings.Join(p.parts, ".")
}
