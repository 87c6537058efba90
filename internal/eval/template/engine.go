package template

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/aescanero/dago-entries/internal/entry"
	"github.com/aescanero/dago-entries/internal/render"
	"github.com/aymerick/raymond"
)

// Engine renders Handlebars templates into entries
type Engine struct {
	registry *render.Registry
	cache    map[string]*raymond.Template
	mu       sync.RWMutex
}

// NewEngine creates a new template engine backed by registry.
// A nil registry uses the built-in renderers.
func NewEngine(registry *render.Registry) *Engine {
	if registry == nil {
		registry = render.NewRegistry()
	}

	return &Engine{
		registry: registry,
		cache:    make(map[string]*raymond.Template),
	}
}

// Render renders a template with the given data
func (e *Engine) Render(templateStr string, data interface{}) (entry.Entry, error) {
	// Get or compile template
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to compile template: %w", err)
	}

	// Execute the template
	result, err := tmpl.Exec(data)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("template execution failed: %w", err)
	}

	return entry.NewBuilder().AppendLiteral(result).Build(), nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*raymond.Template, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	// Compile the template (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	// Bind helpers per template, never in raymond's global table
	tmpl.RegisterHelpers(e.helpers())

	e.cache[templateStr] = tmpl

	return tmpl, nil
}

// Validate validates a template without rendering it
func (e *Engine) Validate(templateStr string) error {
	_, err := raymond.Parse(templateStr)
	return err
}

// ClearCache clears the compiled template cache
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*raymond.Template)
}

// helpers returns the Handlebars helpers bound to this engine
func (e *Engine) helpers() map[string]interface{} {
	return map[string]interface{}{
		// Renderer helpers; output is not HTML-escaped
		"plain": func(value interface{}) raymond.SafeString {
			return e.renderSafe(render.NamePlain, value, "")
		},
		"repr": func(value interface{}) raymond.SafeString {
			return e.renderSafe(render.NameRepr, value, "")
		},
		"json": func(value interface{}, options *raymond.Options) raymond.SafeString {
			return e.renderSafe(render.NameJSON, value, options.HashStr("format"))
		},
		"render": func(name string, value interface{}, options *raymond.Options) raymond.SafeString {
			return e.renderSafe(name, value, options.HashStr("format"))
		},

		"uppercase": func(str string) string {
			return strings.ToUpper(str)
		},
		"lowercase": func(str string) string {
			return strings.ToLower(str)
		},
		"trim": func(str string) string {
			return strings.TrimSpace(str)
		},

		// default returns defaultValue if value is empty
		"default": func(value interface{}, defaultValue interface{}) interface{} {
			if value == nil || value == "" {
				return defaultValue
			}
			return value
		},

		// join describes each element of a slice and joins them with sep
		"join": func(value interface{}, sep string) string {
			v := reflect.ValueOf(value)
			if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
				return render.RenderPlain(value)
			}

			strs := make([]string, v.Len())
			for i := range strs {
				strs[i] = render.RenderPlain(v.Index(i).Interface())
			}
			return strings.Join(strs, sep)
		},
	}
}

// renderSafe renders value with the named renderer, falling back to
// render.Invalid for unknown renderers or formats
func (e *Engine) renderSafe(name string, value interface{}, format string) raymond.SafeString {
	opts, err := render.ParseOptions(format)
	if err != nil {
		return raymond.SafeString(render.Invalid)
	}

	r, err := e.registry.Lookup(name, opts)
	if err != nil {
		return raymond.SafeString(render.Invalid)
	}

	return raymond.SafeString(r.Render(value))
}
