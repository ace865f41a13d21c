// Package easel provides the plumbing for a retained-mode widget toolkit:
// capability interfaces for widgets, a typed signal registry, shared renderer
// properties with explicit detach-on-write, scrollbar and clipboard
// collaborators, font metric oracles and TOML theme loading.
//
// The algorithmic core of the toolkit, a multi-line word-wrapping text box,
// lives in the textbox subpackage and consumes the collaborators defined
// here.
package easel
