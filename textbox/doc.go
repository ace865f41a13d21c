// Package textbox implements a multi-line text input widget: an editable
// rune buffer, greedy word-wrap over a width-measurement oracle, a
// caret/selection model on the wrapped line grid, scrollbar-backed viewport
// management and the mouse/keyboard state machine tying them together.
//
// The whole package is single-threaded: every mutation runs the fixed
// pipeline edit -> re-wrap -> reconcile selection -> update viewport ->
// emit signals, synchronously on the caller's goroutine.
package textbox
