package domain

import (
	"fmt"
	"strings"
)

// Source tags which inventory system a hotel id belongs to. It is a
// closed set: routing decisions switch on the tag, never on raw string
// prefixes.
type Source string

const (
	SourceOwned    Source = "own"
	SourceExternal Source = "ext"
)

// HotelRef is the externally visible composite hotel id, e.g.
// "own_ATH001" or "ext_88123".
type HotelRef struct {
	Source Source
	Code   string
}

// ParseHotelRef validates a composite id once at the boundary. The
// source tag is matched case-insensitively; the code keeps its case.
func ParseHotelRef(s string) (HotelRef, error) {
	tag, code, ok := strings.Cut(s, "_")
	if !ok || code == "" {
		return HotelRef{}, fmt.Errorf("%w: malformed hotel id %q", ErrValidation, s)
	}
	switch Source(strings.ToLower(tag)) {
	case SourceOwned:
		return HotelRef{Source: SourceOwned, Code: code}, nil
	case SourceExternal:
		return HotelRef{Source: SourceExternal, Code: code}, nil
	default:
		return HotelRef{}, fmt.Errorf("%w: unknown source tag %q", ErrValidation, tag)
	}
}

func (r HotelRef) String() string {
	return string(r.Source) + "_" + r.Code
}
