// Package ui draws the multibox window in the terminal.
//
// The tab controller works in layout units against the widget registry;
// this package turns a snapshot of the registry into text. One terminal cell
// is CellWidth x CellHeight units, so the initial 600x400 window is 75x25
// cells.
//
// # Controls
//
//   - Tab strip: rounded tab titles with the active tab highlighted
//   - Label: text in the current font attributes and color
//   - List view: bubbles/table with fixed columns, names truncated with go-runewidth
//   - Button: rounded box, green border when focused
//   - Slider: caption, bubbles/progress track and numeric position
//   - Swatch: solid block in the fill color
//
// Terminal text has no point sizes. Fonts of BoldFontSize and above render
// bold, fonts of FaintFontSize and below render faint.
//
// # Dialogs
//
// RenderErrorDialog and RenderPickerDialog build modal boxes; Overlay
// centers one in the window area.
package ui
