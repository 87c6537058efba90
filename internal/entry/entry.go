package entry

import (
	"strings"

	"github.com/aescanero/dago-entries/internal/render"
)

// Entry is one finalized formatted string
type Entry struct {
	value string
}

// New creates an entry from a plain literal
func New(literal string) Entry {
	return Entry{value: literal}
}

// Value returns the rendered text
func (e Entry) Value() string {
	return e.value
}

// String implements fmt.Stringer
func (e Entry) String() string {
	return e.value
}

// State represents the builder lifecycle
type State int

const (
	// Accumulating accepts new segments
	Accumulating State = iota

	// Finalized holds the built entry; further segments are dropped
	Finalized
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Accumulating:
		return "accumulating"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Builder assembles an Entry from ordered segments.
// The zero value is ready to use.
type Builder struct {
	fragments []string
	state     State
	entry     Entry
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendLiteral appends text unchanged
func (b *Builder) AppendLiteral(text string) *Builder {
	return b.append(text)
}

// AppendValue renders value with r and appends the result.
// A nil renderer renders the plain description.
func (b *Builder) AppendValue(value any, r render.Renderer) *Builder {
	if b.state == Finalized {
		return b
	}
	if r == nil {
		r = render.Plain()
	}
	return b.append(r.Render(value))
}

// AppendPlain appends the natural description of value
func (b *Builder) AppendPlain(value any) *Builder {
	return b.AppendValue(value, render.Plain())
}

// AppendJSON appends value serialized as JSON with opts
func (b *Builder) AppendJSON(value any, opts render.Options) *Builder {
	return b.AppendValue(value, render.JSON(opts))
}

// AppendRepr appends the Go-syntax representation of value
func (b *Builder) AppendRepr(value any) *Builder {
	return b.AppendValue(value, render.Repr())
}

func (b *Builder) append(fragment string) *Builder {
	if b.state == Accumulating {
		b.fragments = append(b.fragments, fragment)
	}
	return b
}

// Build concatenates the accumulated fragments in order and finalizes the
// builder. Later calls return the same entry.
func (b *Builder) Build() Entry {
	if b.state == Finalized {
		return b.entry
	}

	b.entry = Entry{value: strings.Join(b.fragments, "")}
	b.fragments = nil
	b.state = Finalized
	return b.entry
}

// State returns the current lifecycle state
func (b *Builder) State() State {
	return b.state
}

// Len returns the number of accumulated fragments
func (b *Builder) Len() int {
	return len(b.fragments)
}
