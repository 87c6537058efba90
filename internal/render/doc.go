// Package render converts typed values into their textual form for entries.
//
// Three renderers are built in:
//   - plain - natural description of a value (see RenderPlain)
//   - json  - JSON serialization with configurable Options
//   - repr  - Go-syntax debug representation
//
// Example usage:
//
//	user := User{Name: "Appleseed", Age: 20}
//
//	render.RenderPlain([]string{"Item 1", "Item 2"})
//	// ["Item 1", "Item 2"]
//
//	render.RenderJSON(user, render.SortedKeys)
//	// {"age":20,"name":"Appleseed"}
//
//	render.RenderJSON(user, render.PrettyPrinted|render.SortedKeys)
//	// {
//	//   "age": 20,
//	//   "name": "Appleseed"
//	// }
//
// JSON rendering never returns an error. A value that cannot be serialized
// renders as Invalid.
//
// Renderers can be looked up by name from a Registry:
//
//	registry := render.NewRegistry()
//	r, err := registry.Lookup("json", render.PrettyPrinted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(r.Render(user))
package render
