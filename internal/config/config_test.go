package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Mode != "fly" {
		t.Errorf("expected camera mode 'fly', got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.Position != [3]float32{4, 1.5, 10.5} {
		t.Errorf("unexpected camera position %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -90 || cfg.Camera.Pitch != -15 {
		t.Errorf("expected yaw -90 pitch -15, got %g %g", cfg.Camera.Yaw, cfg.Camera.Pitch)
	}
	if cfg.Camera.Zoom != 45 {
		t.Errorf("expected zoom 45, got %g", cfg.Camera.Zoom)
	}
	if cfg.Camera.Up != [3]float32{0, 1, 0} {
		t.Errorf("expected up (0,1,0), got %v", cfg.Camera.Up)
	}

	if cfg.Scene.Preset != "classroom" {
		t.Errorf("expected preset 'classroom', got %s", cfg.Scene.Preset)
	}
	if cfg.Scene.GridIndexing != "unique" {
		t.Errorf("expected grid indexing 'unique', got %s", cfg.Scene.GridIndexing)
	}

	if cfg.Debug.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Debug.ScreenshotDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

camera:
  mode: lookat
  eye: [0, 2, 8]
  look_at: [4, 0, 4]

scene:
  preset: room
  grid_indexing: aliased
  fan_speed: 45

logging:
  level: debug
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Camera.Mode != "lookat" {
		t.Errorf("expected camera mode 'lookat', got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.Eye != [3]float32{0, 2, 8} {
		t.Errorf("unexpected eye %v", cfg.Camera.Eye)
	}
	if cfg.Camera.LookAt != [3]float32{4, 0, 4} {
		t.Errorf("unexpected look_at %v", cfg.Camera.LookAt)
	}
	if cfg.Scene.Preset != "room" {
		t.Errorf("expected preset 'room', got %s", cfg.Scene.Preset)
	}
	if cfg.Scene.GridIndexing != "aliased" {
		t.Errorf("expected grid indexing 'aliased', got %s", cfg.Scene.GridIndexing)
	}
	if cfg.Scene.FanSpeed != 45 {
		t.Errorf("expected fan speed 45, got %g", cfg.Scene.FanSpeed)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Camera.Yaw != -90 {
		t.Errorf("expected default yaw to survive, got %g", cfg.Camera.Yaw)
	}
	if cfg.Debug.ScreenshotDir != "screenshots" {
		t.Errorf("expected default screenshot dir to survive, got %s", cfg.Debug.ScreenshotDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "graphics size"},
		{"negative fps", func(c *Config) { c.Graphics.FPSLimit = -1 }, "fps_limit"},
		{"unknown camera", func(c *Config) { c.Camera.Mode = "orbit" }, "camera mode"},
		{"zero zoom", func(c *Config) { c.Camera.Zoom = 0 }, "zoom"},
		{"eye equals target", func(c *Config) { c.Camera.LookAt = c.Camera.Eye }, "eye and look_at"},
		{"zero up", func(c *Config) { c.Camera.Up = [3]float32{} }, "up vector"},
		{"unknown preset", func(c *Config) { c.Scene.Preset = "gym" }, "scene preset"},
		{"unknown indexing", func(c *Config) { c.Scene.GridIndexing = "random" }, "grid indexing"},
		{"unknown screenshot format", func(c *Config) { c.Debug.ScreenshotFormat = "gif" }, "screenshot format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Scene.Preset = "gym"
	cfg.Camera.Mode = "orbit"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"scene preset", "camera mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Point the user config dir somewhere empty so only ./config.yaml can match.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "scene flags",
			setup: func() {
				*flagPreset = "room"
				*flagCamera = "lookat"
				*flagGrid = "aliased"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Preset != "room" {
					t.Errorf("expected preset 'room', got %s", cfg.Scene.Preset)
				}
				if cfg.Camera.Mode != "lookat" {
					t.Errorf("expected camera 'lookat', got %s", cfg.Camera.Mode)
				}
				if cfg.Scene.GridIndexing != "aliased" {
					t.Errorf("expected grid 'aliased', got %s", cfg.Scene.GridIndexing)
				}
			},
			teardown: func() {
				*flagPreset = ""
				*flagCamera = ""
				*flagGrid = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag beats file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagPreset = "gym"
	defer func() { *flagPreset = "" }()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an unknown preset")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Preset = "room"
	cfg.Camera.Eye = [3]float32{1, 2, 3}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.Preset != "room" {
		t.Errorf("expected preset 'room' after reload, got %s", loaded.Scene.Preset)
	}
	if loaded.Camera.Eye != [3]float32{1, 2, 3} {
		t.Errorf("expected eye (1,2,3) after reload, got %v", loaded.Camera.Eye)
	}
}

func TestSaveWritesUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	cfg := Default()
	cfg.Scene.GridIndexing = "aliased"
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != UserConfigPath() {
		t.Errorf("Save wrote %s, want %s", path, UserConfigPath())
	}

	// The saved file is the one Load discovers without --config.
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())
	if found := findConfigFile(); found != path {
		t.Errorf("findConfigFile() = %q, want %q", found, path)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Scene.GridIndexing != "aliased" {
		t.Errorf("expected grid indexing 'aliased' after reload, got %s", loaded.Scene.GridIndexing)
	}
}
