// Package cel provides a CEL (Common Expression Language) evaluator for
// selecting entries on export.
//
// Expressions see two variables:
//   - entry - the entry text (string)
//   - index - the entry position in storage (int, zero-based)
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	kept, err := storage.Filter(evaluator.Filter(ctx, "entry.startsWith('Entry 3')"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Supported operations:
//   - Comparisons: ==, !=, <, <=, >, >=
//   - Boolean logic: &&, ||, !
//   - String operations: contains, startsWith, endsWith, matches, size
//   - Arithmetic: +, -, *, /, %
package cel
