package render

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"github.com/alecthomas/repr"
	"github.com/tidwall/pretty"
)

// Invalid is the text rendered in place of a value that cannot be serialized
const Invalid = "invalid"

// Renderer converts a value into text
type Renderer interface {
	Render(value any) string
}

// RendererFunc adapts a plain function to the Renderer interface
type RendererFunc func(value any) string

// Render calls f(value)
func (f RendererFunc) Render(value any) string {
	return f(value)
}

// Plain returns the natural description renderer
func Plain() Renderer {
	return RendererFunc(RenderPlain)
}

// JSON returns a JSON renderer using the given formatting options
func JSON(opts Options) Renderer {
	return RendererFunc(func(value any) string {
		return RenderJSON(value, opts)
	})
}

// Repr returns the Go-syntax debug renderer
func Repr() Renderer {
	return RendererFunc(RenderRepr)
}

// RenderJSON serializes value as JSON.
//
// Without options the output is compact and keeps the encoder's key order
// (struct field order, sorted map keys). Any encoding failure, including a
// panicking marshaler, yields Invalid.
func RenderJSON(value any, opts Options) (out string) {
	defer func() {
		if recover() != nil {
			out = Invalid
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return Invalid
	}

	data := formatJSON(bytes.TrimRight(buf.Bytes(), "\n"), opts)
	if !utf8.Valid(data) {
		return Invalid
	}
	return string(data)
}

// formatJSON applies opts to compact, valid JSON
func formatJSON(data []byte, opts Options) []byte {
	switch {
	case opts.Has(PrettyPrinted):
		// Width 0 breaks arrays across lines as well as objects
		data = pretty.PrettyOptions(data, &pretty.Options{
			Width:    0,
			Indent:   "  ",
			SortKeys: opts.Has(SortedKeys),
		})
		return bytes.TrimRight(data, "\n")
	case opts.Has(SortedKeys):
		return pretty.Ugly(pretty.PrettyOptions(data, &pretty.Options{
			Indent:   "  ",
			SortKeys: true,
		}))
	default:
		return data
	}
}

// RenderRepr renders value in Go syntax on a single line
func RenderRepr(value any) string {
	return repr.String(value)
}
