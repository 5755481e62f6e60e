package tabs

import (
	"fmt"
	"strings"
)

// ID names one of the four tabs
type ID int

const (
	HelloWorld ID = iota
	Clock
	FileBrowser
	StyleSettings
)

// Count is the number of tabs
const Count = 4

// All returns every tab in strip order
func All() []ID {
	return []ID{HelloWorld, Clock, FileBrowser, StyleSettings}
}

// Titles returns the tab strip titles in strip order
func Titles() []string {
	titles := make([]string, 0, Count)
	for _, id := range All() {
		titles = append(titles, id.String())
	}
	return titles
}

// String returns the tab strip title
func (id ID) String() string {
	switch id {
	case HelloWorld:
		return "Hello World"
	case Clock:
		return "Clock"
	case FileBrowser:
		return "Read File"
	case StyleSettings:
		return "Style"
	default:
		return fmt.Sprintf("Tab(%d)", int(id))
	}
}

// Valid reports whether id names a tab
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// Next returns the tab after id, wrapping around
func (id ID) Next() ID {
	return ID((int(id) + 1) % Count)
}

// Prev returns the tab before id, wrapping around
func (id ID) Prev() ID {
	return ID((int(id) - 1 + Count) % Count)
}

// ParseID accepts the short names used in configuration and flags:
// hello, clock, files, style.
func ParseID(s string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hello", "helloworld":
		return HelloWorld, nil
	case "clock":
		return Clock, nil
	case "files", "filebrowser", "browser":
		return FileBrowser, nil
	case "style", "stylesettings":
		return StyleSettings, nil
	default:
		return HelloWorld, fmt.Errorf("unknown tab %q (want hello, clock, files or style)", s)
	}
}
