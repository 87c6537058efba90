// Package entry assembles formatted entries and keeps them in order.
//
// A Builder accumulates literal text and rendered values, then produces an
// immutable Entry. A Storage collects entries for later output.
//
// Example usage:
//
//	storage := &entry.Storage{}
//	storage.Add(entry.New("Entry 1"))
//
//	e := entry.NewBuilder().
//	    AppendLiteral("Entry ").
//	    AppendPlain(2).
//	    AppendLiteral(": items=").
//	    AppendPlain([]string{"Item 1", "Item 2"}).
//	    Build()
//	storage.Add(e)
//
//	e = entry.NewBuilder().
//	    AppendLiteral("Entry 3: ").
//	    AppendJSON(user, render.SortedKeys).
//	    Build()
//	storage.Add(e)
//
//	fmt.Println(storage.Join("\n"))
//	// Entry 1
//	// Entry 2: items=["Item 1", "Item 2"]
//	// Entry 3: {"age":20,"name":"Appleseed"}
package entry
