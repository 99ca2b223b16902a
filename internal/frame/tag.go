package frame

import "fmt"

// Tag is the visual role of one dataset index in a frame.
type Tag uint8

const (
	TagDefault Tag = iota
	TagCompare
	TagSwap
	TagPivot
	TagSorted
)

var tagNames = [...]string{
	TagDefault: "default",
	TagCompare: "compare",
	TagSwap:    "swap",
	TagPivot:   "pivot",
	TagSorted:  "sorted",
}

// Tags lists every tag in declaration order.
var Tags = []Tag{TagDefault, TagCompare, TagSwap, TagPivot, TagSorted}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// ParseTag is the inverse of Tag.String.
func ParseTag(s string) (Tag, error) {
	for i, name := range tagNames {
		if name == s {
			return Tag(i), nil
		}
	}
	return TagDefault, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// Highlight holds one tag per dataset index.
type Highlight []Tag

func (h Highlight) Clone() Highlight {
	c := make(Highlight, len(h))
	copy(c, h)
	return c
}

// All reports whether every index carries tag t. An empty highlight reports false.
func (h Highlight) All(t Tag) bool {
	if len(h) == 0 {
		return false
	}
	for _, v := range h {
		if v != t {
			return false
		}
	}
	return true
}

// Count returns how many indices carry tag t.
func (h Highlight) Count(t Tag) int {
	n := 0
	for _, v := range h {
		if v == t {
			n++
		}
	}
	return n
}

// Uniform returns a highlight of length n with every index set to t.
func Uniform(n int, t Tag) Highlight {
	h := make(Highlight, n)
	if t != TagDefault {
		for i := range h {
			h[i] = t
		}
	}
	return h
}

// Roles builds a highlight for a single step. Every index starts as
// TagDefault; later assignments overwrite earlier ones, so callers apply
// roles in the order sorted region, pivot/min, active compare, swap.
type Roles struct {
	tags Highlight
}

func NewRoles(n int) *Roles {
	return &Roles{tags: make(Highlight, n)}
}

// Range tags the half-open interval [from, to), clamped to the dataset.
func (r *Roles) Range(from, to int, t Tag) *Roles {
	if from < 0 {
		from = 0
	}
	if to > len(r.tags) {
		to = len(r.tags)
	}
	for i := from; i < to; i++ {
		r.tags[i] = t
	}
	return r
}

// Mark tags individual indices. Out-of-range indices are ignored.
func (r *Roles) Mark(t Tag, idx ...int) *Roles {
	for _, i := range idx {
		if i >= 0 && i < len(r.tags) {
			r.tags[i] = t
		}
	}
	return r
}

// Highlight returns a fresh copy of the built tags.
func (r *Roles) Highlight() Highlight {
	return r.tags.Clone()
}
