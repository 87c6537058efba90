package template

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

func testData() map[string]interface{} {
	return map[string]interface{}{
		"index": 2,
		"name":  "john",
		"items": []string{"Item 1", "Item 2"},
		"user":  user{Name: "Appleseed", Age: 20},
		"ch":    make(chan int),
		"empty": "",
	}
}

func TestEngine_Render(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "literal only", template: "Entry 1", want: "Entry 1"},
		{name: "plain items", template: "Entry {{index}}: items={{plain items}}", want: `Entry 2: items=["Item 1", "Item 2"]`},
		{name: "json compact", template: "{{json user}}", want: `{"name":"Appleseed","age":20}`},
		{name: "json sorted", template: `{{json user format="sortedKeys"}}`, want: `{"age":20,"name":"Appleseed"}`},
		{name: "json unknown format", template: `{{json user format="bogus"}}`, want: render.Invalid},
		{name: "json invalid value", template: "x={{json ch}}", want: "x=invalid"},
		{name: "repr", template: "{{repr items}}", want: `[]string{"Item 1", "Item 2"}`},
		{name: "render by name", template: `{{render "json" user format="sortedKeys"}}`, want: `{"age":20,"name":"Appleseed"}`},
		{name: "render plain by name", template: `{{render "plain" items}}`, want: `["Item 1", "Item 2"]`},
		{name: "render unknown format", template: `{{render "json" user format="bogus"}}`, want: render.Invalid},
		{name: "render unknown", template: `{{render "yaml" user}}`, want: render.Invalid},
		{name: "uppercase", template: "{{uppercase name}}", want: "JOHN"},
		{name: "lowercase", template: `{{lowercase "MiXeD"}}`, want: "mixed"},
		{name: "trim", template: `[{{trim "  x  "}}]`, want: "[x]"},
		{name: "default", template: `{{default empty "N/A"}}`, want: "N/A"},
		{name: "join", template: `{{join items ", "}}`, want: "Item 1, Item 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := engine.Render(tt.template, testData())
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Value())
		})
	}
}

func TestEngine_RenderPretty(t *testing.T) {
	e, err := NewEngine(nil).Render(`Entry 3: {{json user format="prettyPrinted,sortedKeys"}}`, testData())
	require.NoError(t, err)

	out := e.Value()
	assert.True(t, strings.HasPrefix(out, "Entry 3: {\n"))
	assert.Less(t, strings.Index(out, `"age"`), strings.Index(out, `"name"`))
}

func TestEngine_CustomRegistry(t *testing.T) {
	registry := render.NewRegistry()
	require.NoError(t, registry.Register("shout", func(render.Options) render.Renderer {
		return render.RendererFunc(func(v any) string {
			return strings.ToUpper(render.RenderPlain(v)) + "!"
		})
	}))

	e, err := NewEngine(registry).Render(`{{render "shout" name}}`, testData())
	require.NoError(t, err)
	assert.Equal(t, "JOHN!", e.Value())
}

func TestEngine_ParseError(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.Render("{{#if index}}unclosed", testData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile template")

	assert.Error(t, engine.Validate("{{#if index}}unclosed"))
	assert.NoError(t, engine.Validate("Entry {{index}}"))
}

func TestEngine_Cache(t *testing.T) {
	engine := NewEngine(nil)

	for i := 0; i < 3; i++ {
		_, err := engine.Render("Entry {{index}}", testData())
		require.NoError(t, err)
	}
	_, err := engine.Render("{{plain items}}", testData())
	require.NoError(t, err)
	assert.Len(t, engine.cache, 2)

	engine.ClearCache()
	assert.Empty(t, engine.cache)

	e, err := engine.Render("Entry {{index}}", testData())
	require.NoError(t, err)
	assert.Equal(t, "Entry 2", e.Value())
}

func TestEngine_SeparateEnginesDoNotCollide(t *testing.T) {
	first := NewEngine(nil)
	second := NewEngine(nil)

	a, err := first.Render("{{plain index}}", testData())
	require.NoError(t, err)
	b, err := second.Render("{{plain index}}", testData())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
