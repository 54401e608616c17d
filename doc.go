// Package knightpath enumerates every minimum-length knight route
// between two squares of the chessboard, together with the presentation
// to match: coloured boards, Graphviz exports and an interactive
// step-through explorer.
//
// 🚀 What is knightpath?
//
//	A small, deterministic library and CLI built around one question:
//		• Given two squares, which shortest knight routes exist?
//		• Not one witness route, but every route of minimum length.
//		• In a fixed, reproducible order, run after run.
//
// ✨ Why choose knightpath?
//
//   - Complete answers – all optimal routes, not an arbitrary first one
//   - Deterministic – fixed move order, stable output, testable hooks
//   - Presentation-ready – lipgloss boards, DOT graphs, Bubble Tea TUI
//   - Tiny surface – parse a square, ask for routes, print the result
//
// Everything is organized under five subpackages and a command:
//
//	board/          – squares, algebraic notation, bounds checks
//	knight/         – the knight's move table and reachability helpers
//	paths/          – the breadth-first enumeration of shortest routes
//	render/         – lipgloss board painting and Graphviz export
//	tui/            – the Bubble Tea route explorer
//	cmd/knightpath/ – the CLI wiring it all together
//
// Quick ASCII example:
//
//	A1 → D4 has two optimal routes of two moves:
//
//	    A1 ── C2 ── D4
//	    A1 ── B3 ── D4
//
// Dive into the per-package docs for determinism notes, hook points and
// complexity bounds.
//
//	go get github.com/katalvlaran/knightpath
package knightpath
