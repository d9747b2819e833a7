package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devicelab-dev/appium-go/pkg/appium"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
serverUrl: http://10.0.0.5:4723/wd/hub
requestTimeout: 90s
capabilities:
  platformName: Android
  appium:automationName: UiAutomator2
  appium:udid: emulator-5554
wait:
  timeout: 10s
  interval: 500ms
log:
  level: debug
  file: /tmp/appium-go.log
  maxSize: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != "http://10.0.0.5:4723/wd/hub" {
		t.Errorf("expected serverUrl, got %s", cfg.ServerURL)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("expected requestTimeout 90s, got %s", cfg.RequestTimeout)
	}
	if cfg.Capabilities.Platform() != "android" {
		t.Errorf("expected platform android, got %q", cfg.Capabilities.Platform())
	}
	if cfg.Capabilities["appium:udid"] != "emulator-5554" {
		t.Errorf("expected udid emulator-5554, got %v", cfg.Capabilities["appium:udid"])
	}
	if cfg.Wait.Timeout != 10*time.Second || cfg.Wait.Interval != 500*time.Millisecond {
		t.Errorf("expected wait 10s/500ms, got %s/%s", cfg.Wait.Timeout, cfg.Wait.Interval)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/appium-go.log" || cfg.Log.MaxSize != 5 {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `capabilities: [invalid yaml`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("wait:\n  timeout: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestLoad_EmptyConfigGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("expected default server url, got %s", cfg.ServerURL)
	}
	if cfg.RequestTimeout != appium.DefaultRequestTimeout {
		t.Errorf("expected default request timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.Wait.Timeout != 30*time.Second || cfg.Wait.Interval != 250*time.Millisecond {
		t.Errorf("expected default wait 30s/250ms, got %s/%s", cfg.Wait.Timeout, cfg.Wait.Interval)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Capabilities == nil {
		t.Error("expected non-nil capabilities")
	}
}

func TestLoad_CapabilitiesFile(t *testing.T) {
	dir := t.TempDir()

	caps := `{"platformName": "iOS", "appium:bundleId": "com.example.file", "appium:udid": "file-udid"}`
	if err := os.WriteFile(filepath.Join(dir, "caps.json"), []byte(caps), 0644); err != nil {
		t.Fatal(err)
	}
	content := `
capabilitiesFile: caps.json
capabilities:
  appium:udid: inline-udid
`
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Capabilities.Platform() != "ios" {
		t.Errorf("expected platform from file, got %q", cfg.Capabilities.Platform())
	}
	if cfg.Capabilities["appium:bundleId"] != "com.example.file" {
		t.Errorf("expected bundleId from file, got %v", cfg.Capabilities["appium:bundleId"])
	}
	if cfg.Capabilities["appium:udid"] != "inline-udid" {
		t.Errorf("expected inline udid to win, got %v", cfg.Capabilities["appium:udid"])
	}
}

func TestLoad_ExpandsHomePaths(t *testing.T) {
	home := t.TempDir()
	ResetHome()
	t.Cleanup(ResetHome)
	t.Setenv("HOME", home)

	if err := os.WriteFile(filepath.Join(home, "caps.yaml"), []byte("platformName: Android\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "capabilitiesFile: ~/caps.yaml\nlog:\n  file: ~/logs/client.log\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Capabilities.Platform() != "android" {
		t.Errorf("expected capabilities from ~/caps.yaml, got %v", cfg.Capabilities)
	}
	if want := filepath.Join(home, "logs", "client.log"); cfg.Log.File != want {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, want)
	}
}

func TestLoad_MissingCapabilitiesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("capabilitiesFile: missing.yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for missing capabilities file")
	}
}

func TestLoadFromDir_ConfigYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("serverUrl: http://a:1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != "http://a:1" {
		t.Errorf("expected http://a:1, got %s", cfg.ServerURL)
	}
}

func TestLoadFromDir_ConfigYml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("serverUrl: http://b:2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != "http://b:2" {
		t.Errorf("expected http://b:2, got %s", cfg.ServerURL)
	}
}

func TestLoadFromDir_PrefersYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("serverUrl: http://yaml:1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("serverUrl: http://yml:1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != "http://yaml:1" {
		t.Errorf("expected config.yaml to win, got %s", cfg.ServerURL)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without platformName")
	}

	cfg.Capabilities.Set("platformName", "Android")
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Wait.Interval = time.Minute
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for interval longer than timeout")
	}
}

func TestNewWait(t *testing.T) {
	cfg := Default()
	cfg.Wait.Timeout = 7 * time.Second
	cfg.Wait.Interval = 70 * time.Millisecond

	w := cfg.NewWait(appium.NewWait(nil))
	if w.Timeout() != 7*time.Second || w.Interval() != 70*time.Millisecond {
		t.Errorf("expected 7s/70ms, got %s/%s", w.Timeout(), w.Interval())
	}
	if len(cfg.ClientOptions()) == 0 {
		t.Error("expected client options")
	}
}
