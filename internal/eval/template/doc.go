// Package template renders Handlebars templates into entries.
//
// Values are rendered through a render.Registry with dedicated helpers, so
// the renderer is always chosen explicitly at the call site.
//
// Example usage:
//
//	engine := template.NewEngine(nil)
//
//	data := map[string]interface{}{
//	    "index": 2,
//	    "items": []string{"Item 1", "Item 2"},
//	    "user":  User{Name: "Appleseed", Age: 20},
//	}
//
//	e, err := engine.Render("Entry {{index}}: items={{plain items}}", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Entry 2: items=["Item 1", "Item 2"]
//
//	e, err = engine.Render(`Entry 3: {{json user format="sortedKeys"}}`, data)
//	// Entry 3: {"age":20,"name":"Appleseed"}
//
// Renderer helpers (output is not HTML-escaped):
//   - plain - natural description
//   - repr - Go-syntax representation
//   - json - JSON, optional format="prettyPrinted,sortedKeys"
//   - render - any registered renderer by name, optional format
//
// An unknown renderer name or format flag renders "invalid".
//
// Text helpers:
//   - uppercase - Convert string to uppercase
//   - lowercase - Convert string to lowercase
//   - trim - Trim whitespace from string
//   - default - Return default value if first arg is empty
//   - join - Join described slice elements with separator
//
// Plain {{value}} expressions are HTML-escaped by Handlebars; use the plain
// helper to keep quotes and angle brackets intact.
package template
