// Package widget defines the control toolkit the tab controller draws with,
// and Registry, an in-memory implementation that tracks every live control
// and font.
package widget
