// Package shell hosts the tab controller in a Bubble Tea program.
//
// The Model owns a widget.Registry, the shared style.State and a
// tabs.Controller. Every terminal message is first classified into one of a
// small closed set of window events (resize, tick, tab selection, button
// command, slider scroll, destroy and a few navigation events), and each
// event is then handed to the controller. Rendering draws the registry
// through package ui.
//
// The clock timer is a tea.Every command. Each arming gets a generation
// number so ticks queued before a disarm are dropped.
//
// The folder picker and the error dialog are modal: while either is open it
// receives every key.
package shell
