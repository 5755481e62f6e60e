package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/multibox/internal/widget"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	assert.True(t, strings.Contains(configDir, "multibox"), "config dir %q should contain 'multibox'", configDir)

	switch runtime.GOOS {
	case "windows":
		assert.Contains(t, configDir, "AppData")
	case "darwin":
		assert.Contains(t, configDir, ".config")
	default:
		assert.Equal(t, filepath.Join("/tmp/xdg", "multibox"), configDir)
	}
}

func TestGetConfigAndLogPath(t *testing.T) {
	configPath, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(configPath))

	logPath, err := GetLogPath()
	require.NoError(t, err)
	assert.Equal(t, "multibox.log", filepath.Base(logPath))
	assert.Equal(t, filepath.Dir(configPath), filepath.Dir(logPath))
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 1, s.Version)
	assert.Equal(t, "Arial", s.Style.FontFace)
	assert.Equal(t, 20, s.Style.FontSize)
	assert.Equal(t, widget.Color{R: 255, G: 255, B: 255}, s.TextColor())
	assert.Equal(t, "hello", s.Startup.Tab)
	assert.Equal(t, time.Second, s.Clock.Tick)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, s *Settings)
		wantErr bool
	}{
		{
			name: "full file",
			yaml: `
version: 1
style:
  font_face: Courier
  font_size: 14
  color: {r: 10, g: 20, b: 30}
startup:
  tab: clock
  browse_dir: /tmp
clock:
  tick: 500ms
`,
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "Courier", s.Style.FontFace)
				assert.Equal(t, 14, s.Style.FontSize)
				assert.Equal(t, widget.Color{R: 10, G: 20, B: 30}, s.TextColor())
				assert.Equal(t, "clock", s.Startup.Tab)
				assert.Equal(t, "/tmp", s.Startup.BrowseDir)
				assert.Equal(t, 500*time.Millisecond, s.Clock.Tick)
			},
		},
		{
			name: "partial file keeps defaults",
			yaml: "version: 1\nstartup:\n  tab: style\n",
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "style", s.Startup.Tab)
				assert.Equal(t, 20, s.Style.FontSize)
				assert.Equal(t, widget.Color{R: 255, G: 255, B: 255}, s.TextColor())
				assert.Equal(t, time.Second, s.Clock.Tick)
			},
		},
		{
			name: "out of range values are clamped",
			yaml: "version: 1\nstyle:\n  font_size: 99\n  color: {r: -3, g: 300, b: 7}\nclock:\n  tick: -1s\n",
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, 30, s.Style.FontSize)
				assert.Equal(t, ColorSettings{R: 0, G: 255, B: 7}, s.Style.Color)
				assert.Equal(t, time.Second, s.Clock.Tick)
			},
		},
		{
			name:    "unsupported version",
			yaml:    "version: 2\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "style: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nstyle:\n  font_size: 12\n"), 0600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Style.FontSize)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicitly named file must exist")
}

func TestLoadDefaultPathMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Setenv("LOCALAPPDATA", t.TempDir())
	} else {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
	}

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}
