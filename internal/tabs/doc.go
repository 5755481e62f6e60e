// Package tabs implements the tab controller: which tab is active, which
// controls it owns, and how style changes reach them.
//
// Switching tabs tears down every control of the old tab before the new
// tab's controls are created. The clock timer is armed exactly while the
// clock tab is active.
package tabs
