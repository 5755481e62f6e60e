// Package config loads the optional multibox configuration file.
//
// The file only supplies startup defaults: the initial font and text color,
// the tab shown first, the folder pre-filled in the folder picker and the
// clock refresh period. The program never writes it; style changes made in
// the UI last until exit.
//
// # Configuration File Location
//
// The configuration file is looked up in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/multibox/config.yaml or $HOME/.config/multibox/config.yaml
//   - macOS: $HOME/.config/multibox/config.yaml
//   - Windows: %LOCALAPPDATA%\multibox\config.yaml
//
// A different file can be named with --config. A missing default file is not
// an error; a missing explicitly named file is.
//
// # File Format
//
//	version: 1
//	style:
//	  font_face: Arial
//	  font_size: 20
//	  color: {r: 255, g: 255, b: 255}
//	startup:
//	  tab: clock
//	  browse_dir: /home/user
//	clock:
//	  tick: 1s
//
// Out-of-range values are clamped rather than rejected, the same way the
// style sliders clamp their input.
package config
