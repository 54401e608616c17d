// Package render turns path-search results into presentation artifacts:
// a terminal checkerboard and a Graphviz DOT document.
//
// What:
//
//   - Board: a Size×Size checkerboard with rank 1 at the bottom and file
//     letters underneath; walk squares carry step indices and the
//     knight's square carries a glyph.
//   - DOT / WriteDOT: a Graphviz digraph of every walk in a PathSet,
//     blue edges, deduplicated in first-encounter order, titled
//     "Shortest path from X to Y".
//   - Theme / Styles: a lipgloss palette with a colourless MonoTheme
//     fallback and a configurable knight glyph.
//
// Why:
//
//   - Rendering consumes finished results and feeds nothing back into
//     the search; keeping it pure string construction (the writer is the
//     caller's) makes every artifact testable byte for byte.
//
// Determinism:
//
//	Board and DOT are pure functions of their inputs; for a given
//	PathSet the DOT document, including edge order, never varies.
package render
