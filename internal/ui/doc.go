// Package ui provides semantic terminal formatting for secman output.
//
// Instead of calling color functions directly, commands use semantic
// formatters (Success, Error, Path, Secret, ...) so the meaning of a piece
// of output is stated once and the rendering degrades gracefully when color
// is unavailable or disabled via NO_COLOR.
package ui
