package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestExtensions verifies that custom extensions in pick.yml are properly loaded
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"
theme: gruvbox

# Extension fields consumed by the logging package
logging:
  level: debug
  report_caller: true

# Extension fields from a hypothetical tool
monitoring:
  enabled: true
  interval: 30
`)

	cfg, err := LoadFromBytes(yamlContent)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify extensions were captured
	if cfg.Extensions == nil {
		t.Fatal("Extensions map should not be nil")
	}

	// Test logging extension
	loggingExt, ok := cfg.Extensions["logging"]
	if !ok {
		t.Fatal("Expected 'logging' extension to be present")
	}

	// Test UnmarshalExtension for logging
	type LogConfig struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}

	var logCfg LogConfig
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		t.Fatalf("Failed to unmarshal logging extension: %v", err)
	}

	if logCfg.Level != "debug" {
		t.Errorf("Expected level to be 'debug', got '%s'", logCfg.Level)
	}

	if !logCfg.ReportCaller {
		t.Error("Expected report_caller to be true")
	}

	// Test monitoring extension
	type MonitoringConfig struct {
		Enabled  bool `yaml:"enabled"`
		Interval int  `yaml:"interval"`
	}

	var monCfg MonitoringConfig
	if err := cfg.UnmarshalExtension("monitoring", &monCfg); err != nil {
		t.Fatalf("Failed to unmarshal monitoring extension: %v", err)
	}

	if !monCfg.Enabled {
		t.Error("Expected monitoring to be enabled")
	}

	if monCfg.Interval != 30 {
		t.Errorf("Expected interval to be 30, got %d", monCfg.Interval)
	}

	// Test non-existent extension (should not error)
	type UnknownConfig struct {
		SomeField string `yaml:"some_field"`
	}

	var unknownCfg UnknownConfig
	if err := cfg.UnmarshalExtension("unknown", &unknownCfg); err != nil {
		t.Fatalf("UnmarshalExtension should not error for non-existent keys: %v", err)
	}

	// unknownCfg should remain zero-valued
	if unknownCfg.SomeField != "" {
		t.Errorf("Expected SomeField to be empty for non-existent extension")
	}

	// Verify that logging extension is a map
	if _, ok := loggingExt.(map[string]interface{}); !ok {
		t.Errorf("Expected logging extension to be a map[string]interface{}, got %T", loggingExt)
	}
}

// TestExtensionsDoNotInterfereWithCoreConfig verifies that extensions don't break core config parsing
func TestExtensionsDoNotInterfereWithCoreConfig(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"
theme: kanagawa
menu:
  mode: collapsed
  clear_screen: false

# Custom extension
custom:
  feature: enabled
  config:
    nested: true
`)

	cfg, err := LoadFromBytes(yamlContent)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify core config is properly loaded
	if cfg.Version != "1.0" {
		t.Errorf("Expected version '1.0', got '%s'", cfg.Version)
	}
	if cfg.Theme != "kanagawa" {
		t.Errorf("Expected theme 'kanagawa', got '%s'", cfg.Theme)
	}
	if cfg.Menu == nil || cfg.Menu.Mode != ModeCollapsed {
		t.Errorf("Expected menu.mode 'collapsed', got %+v", cfg.Menu)
	}
	if cfg.Menu.ClearScreen == nil || *cfg.Menu.ClearScreen {
		t.Error("Expected menu.clear_screen to be false")
	}

	// Verify custom extension is captured
	if _, ok := cfg.Extensions["custom"]; !ok {
		t.Error("Expected 'custom' extension to be present")
	}
}

func TestInvalidMenuMode(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"
menu:
  mode: sideways
`)

	if _, err := LoadFromBytes(yamlContent); err == nil {
		t.Fatal("Expected an error for unknown menu.mode")
	}
}

func TestFindConfigFile(t *testing.T) {
	// Build root/sub/leaf with pick.yml at root
	root := t.TempDir()
	leaf := filepath.Join(root, "sub", "leaf")
	if err := os.MkdirAll(leaf, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(root, "pick.yml")
	if err := os.WriteFile(configPath, []byte("version: \"1.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Searching from the leaf should walk up and find the root config
	found, err := FindConfigFile(leaf)
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if found != configPath {
		t.Errorf("Expected %s, got %s", configPath, found)
	}

	// A hidden variant closer to the leaf wins over the root file
	hiddenPath := filepath.Join(root, "sub", ".pick.yml")
	if err := os.WriteFile(hiddenPath, []byte("version: \"1.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	found, err = FindConfigFile(leaf)
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if found != hiddenPath {
		t.Errorf("Expected %s, got %s", hiddenPath, found)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PICK_TEST_THEME", "gruvbox")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple substitution",
			input:    "theme: ${PICK_TEST_THEME}",
			expected: "theme: gruvbox",
		},
		{
			name:     "unset variable becomes empty",
			input:    "theme: ${PICK_TEST_UNSET}",
			expected: "theme: ",
		},
		{
			name:     "unset variable with default",
			input:    "theme: ${PICK_TEST_UNSET:-terminal}",
			expected: "theme: terminal",
		},
		{
			name:     "set variable ignores default",
			input:    "theme: ${PICK_TEST_THEME:-terminal}",
			expected: "theme: gruvbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandEnvVars(tt.input); got != tt.expected {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOverrideMerging(t *testing.T) {
	dir := t.TempDir()

	project := []byte(`
version: "1.0"
theme: kanagawa
menu:
  mode: expanded
  include_exit: true
`)
	override := []byte(`
theme: terminal
menu:
  mode: collapsed
`)

	if err := os.WriteFile(filepath.Join(dir, "pick.yml"), project, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pick.override.yml"), override, 0644); err != nil {
		t.Fatal(err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg, err := LoadFromWithLogger(dir, logger)
	if err != nil {
		t.Fatalf("LoadFromWithLogger failed: %v", err)
	}

	if cfg.Theme != "terminal" {
		t.Errorf("Expected override theme 'terminal', got '%s'", cfg.Theme)
	}
	if cfg.Menu.Mode != ModeCollapsed {
		t.Errorf("Expected override mode 'collapsed', got '%s'", cfg.Menu.Mode)
	}
	// include_exit comes from the project layer, untouched by the override
	if cfg.Menu.IncludeExit == nil || !*cfg.Menu.IncludeExit {
		t.Error("Expected include_exit true from project config to survive the merge")
	}
}
