// Package labelstore assigns stable integer labels to categorical values and
// persists the assignment for reuse across runs.
//
// A Store wraps a repository.Repository and exposes four operations:
//
//   - Fit creates a mapping from a column, labeling its distinct values 0..K-1.
//   - Update extends an existing mapping with newly observed values, giving
//     each one the smallest label not yet in use. Existing labels never change.
//   - Transform encodes values to labels with a strict lookup.
//   - InverseTransform decodes labels back to values.
//
// Every operation loads the whole mapping, works on it in memory and, for Fit
// and Update, stores it back. The Store does not lock: two processes calling
// Update on the same handle at the same time race, and the last writer wins.
// Callers must ensure a single writer per mapping.
//
// Example:
//
//	store, err := labelstore.New(repo)
//	...
//	err = store.Fit(ctx, category.Strings("a", "b", "a", "c"), "colors")
//	...
//	labels, err := store.Transform(ctx, category.Strings("c", "a"), "colors")
package labelstore
