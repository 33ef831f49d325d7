package blog

import (
	"fmt"
	"strings"
)

// PostType is the closed set of blog post categories.
type PostType uint8

const (
	News PostType = iota + 1
	Review
	Guide
)

// PostTypes returns every PostType in declaration order.
func PostTypes() []PostType {
	return []PostType{News, Review, Guide}
}

// String returns the upper-case name of t, e.g. "NEWS".
func (t PostType) String() string {
	switch t {
	case News:
		return "NEWS"
	case Review:
		return "REVIEW"
	case Guide:
		return "GUIDE"
	default:
		return fmt.Sprintf("PostType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the declared post types.
func (t PostType) Valid() bool {
	switch t {
	case News, Review, Guide:
		return true
	default:
		return false
	}
}

// ParsePostType parses a case-insensitive post type name.
func ParsePostType(s string) (PostType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NEWS":
		return News, nil
	case "REVIEW":
		return Review, nil
	case "GUIDE":
		return Guide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPostType, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t PostType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPostType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PostType) UnmarshalText(text []byte) error {
	parsed, err := ParsePostType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
