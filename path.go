package swagval

import (
	"strconv"
	"strings"
)

// Path builds JSON Pointer paths in a chain-safe way.
type Path struct {
	parts []string
}

// Root is the path of the document itself.
func Root() Path { return Path{} }

// Field appends an object key.
func (p Path) Field(name string) Path {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index appends an array position.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path as an RFC 6901 JSON Pointer. The root is "" and
// "/" addresses the empty key.
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return ""
	}
	return "/" + strings.Join(p.parts, "/")
}
