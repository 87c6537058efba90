package entry

import (
	"strings"
	"testing"

	"github.com/aescanero/dago-entries/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestNew(t *testing.T) {
	e := New("Entry 1")
	assert.Equal(t, "Entry 1", e.Value())
	assert.Equal(t, "Entry 1", e.String())
}

func TestBuilder_LiteralsConcatenateInOrder(t *testing.T) {
	tests := []struct {
		name     string
		literals []string
	}{
		{name: "none", literals: nil},
		{name: "single", literals: []string{"Entry 1"}},
		{name: "several", literals: []string{"a", "b", "c"}},
		{name: "with empty", literals: []string{"a", "", "b"}},
		{name: "with whitespace", literals: []string{"a ", " b", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			for _, l := range tt.literals {
				b.AppendLiteral(l)
			}
			assert.Equal(t, strings.Join(tt.literals, ""), b.Build().Value())
		})
	}
}

func TestBuilder_PlainItems(t *testing.T) {
	e := NewBuilder().
		AppendLiteral("Entry ").
		AppendPlain(2).
		AppendLiteral(": items=").
		AppendPlain([]string{"Item 1", "Item 2"}).
		Build()

	assert.Equal(t, `Entry 2: items=["Item 1", "Item 2"]`, e.Value())
}

func TestBuilder_JSON(t *testing.T) {
	u := user{Name: "Appleseed", Age: 20}

	e := NewBuilder().AppendLiteral("Entry 3: ").AppendJSON(u, render.SortedKeys).Build()
	assert.Equal(t, `Entry 3: {"age":20,"name":"Appleseed"}`, e.Value())

	e = NewBuilder().AppendLiteral("Entry 3: ").AppendJSON(u, render.PrettyPrinted|render.SortedKeys).Build()
	assert.True(t, strings.HasPrefix(e.Value(), "Entry 3: {\n"))
	assert.Less(t, strings.Index(e.Value(), `"age"`), strings.Index(e.Value(), `"name"`))
}

func TestBuilder_InvalidJSONIsAbsorbed(t *testing.T) {
	e := NewBuilder().
		AppendLiteral("value=").
		AppendJSON(make(chan int), 0).
		AppendLiteral(";").
		Build()

	assert.Equal(t, "value=invalid;", e.Value())
}

func TestBuilder_AppendValue(t *testing.T) {
	shout := render.RendererFunc(func(v any) string {
		return strings.ToUpper(render.RenderPlain(v))
	})

	e := NewBuilder().
		AppendValue("hello", shout).
		AppendLiteral(" ").
		AppendValue([]int{1}, nil).
		AppendLiteral(" ").
		AppendRepr([]string{"x"}).
		Build()

	assert.Equal(t, `HELLO [1] []string{"x"}`, e.Value())
}

func TestBuilder_States(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, Accumulating, b.State())
	assert.Equal(t, "accumulating", b.State().String())

	b.AppendLiteral("a").AppendPlain(1)
	assert.Equal(t, 2, b.Len())

	first := b.Build()
	assert.Equal(t, Finalized, b.State())
	assert.Equal(t, "finalized", b.State().String())
	assert.Equal(t, "a1", first.Value())

	b.AppendLiteral("dropped").AppendJSON(1, 0)
	assert.Equal(t, 0, b.Len())

	second := b.Build()
	assert.Equal(t, first, second)
	assert.Equal(t, "unknown", State(9).String())
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	require.Equal(t, Accumulating, b.State())
	assert.Equal(t, "x", b.AppendLiteral("x").Build().Value())
}
