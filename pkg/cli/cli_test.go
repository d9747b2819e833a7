package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"

	"github.com/devicelab-dev/appium-go/pkg/config"
)

// writeJSON encodes data as JSON to the response writer.
func writeJSON(w http.ResponseWriter, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// fakeAppium is a minimal Appium server with one session "s1".
type fakeAppium struct {
	mu       sync.Mutex
	paths    []string
	caps     map[string]interface{}
	deleted  bool
	notFound int    // element lookups answered with "no such element" first
	source   string // page source, "<hierarchy/>" when empty
}

func (f *fakeAppium) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.paths = append(f.paths, r.Method+" "+r.URL.Path)

		switch {
		case r.URL.Path == "/status":
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{"ready": true, "message": "server is ready"},
			})
		case r.URL.Path == "/session" && r.Method == http.MethodPost:
			var req struct {
				Capabilities struct {
					AlwaysMatch map[string]interface{} `json:"alwaysMatch"`
				} `json:"capabilities"`
			}
			if err := json.Unmarshal(body, &req); err != nil {
				t.Errorf("bad session request: %v", err)
			}
			f.caps = req.Capabilities.AlwaysMatch
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{
					"sessionId":    "s1",
					"capabilities": map[string]interface{}{"platformName": "Android"},
				},
			})
		case r.URL.Path == "/session/s1" && r.Method == http.MethodDelete:
			f.deleted = true
			writeJSON(w, map[string]interface{}{"value": nil})
		case r.URL.Path == "/session/s1/element":
			if f.notFound > 0 {
				f.notFound--
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]interface{}{
					"value": map[string]interface{}{"error": "no such element", "message": "not yet"},
				})
				return
			}
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{"element-6066-11e4-a52e-4f735466cecf": "el-1"},
			})
		case r.URL.Path == "/session/s1/elements":
			writeJSON(w, map[string]interface{}{
				"value": []interface{}{
					map[string]interface{}{"ELEMENT": "el-1"},
					map[string]interface{}{"ELEMENT": "el-2"},
				},
			})
		case r.URL.Path == "/session/s1/source":
			source := f.source
			if source == "" {
				source = "<hierarchy/>"
			}
			writeJSON(w, map[string]interface{}{"value": source})
		case r.URL.Path == "/session/s1/screenshot":
			writeJSON(w, map[string]interface{}{"value": "iVBORw0KGgo="})
		default:
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{"error": "unknown command", "message": r.URL.Path},
			})
		}
	}
}

// run executes the app against fake with an isolated home directory.
func run(t *testing.T, fake *fakeAppium, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	config.ResetHome()
	t.Setenv("APPIUM_GO_HOME", t.TempDir())
	t.Cleanup(config.ResetHome)

	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	full := append([]string{"appium-go", "--appium-url", server.URL}, args...)
	err := app.Run(full)
	return out.String(), err
}

func TestGlobalFlags(t *testing.T) {
	if len(GlobalFlags) == 0 {
		t.Error("expected GlobalFlags to be defined")
	}

	flagNames := make(map[string]bool)
	for _, f := range GlobalFlags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	requiredFlags := []string{"appium-url", "config", "c", "caps", "platform", "p", "device", "udid", "verbose", "log-file"}
	for _, name := range requiredFlags {
		if !flagNames[name] {
			t.Errorf("expected flag %q to be defined", name)
		}
	}
}

func TestStatusCommand(t *testing.T) {
	out, err := run(t, &fakeAppium{}, "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "ready: server is ready") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFindCommand(t *testing.T) {
	fake := &fakeAppium{}
	out, err := run(t, fake, "-p", "android", "--udid", "emulator-5554",
		"find", "--using", "id", "--value", "com.example:id/login")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "el-1" {
		t.Errorf("expected el-1, got %q", out)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if fake.caps["platformName"] != "Android" {
		t.Errorf("expected platformName Android, got %v", fake.caps["platformName"])
	}
	if fake.caps["appium:udid"] != "emulator-5554" {
		t.Errorf("expected appium:udid, got %v", fake.caps)
	}
	if !fake.deleted {
		t.Error("session was not deleted")
	}
}

func TestFindCommand_All(t *testing.T) {
	out, err := run(t, &fakeAppium{}, "-p", "android",
		"find", "--using", "class name", "--value", "android.widget.TextView", "--all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Fields(out); len(got) != 2 || got[0] != "el-1" || got[1] != "el-2" {
		t.Errorf("expected el-1 el-2, got %q", out)
	}
}

func TestFindCommand_Wait(t *testing.T) {
	fake := &fakeAppium{notFound: 2}
	out, err := run(t, fake, "-p", "ios",
		"find", "--value", "Login", "--wait", "--timeout", "5s", "--interval", "10ms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "el-1" {
		t.Errorf("expected el-1, got %q", out)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	lookups := 0
	for _, p := range fake.paths {
		if p == "POST /session/s1/element" {
			lookups++
		}
	}
	if lookups != 3 {
		t.Errorf("expected 3 lookups, got %d", lookups)
	}
}

func TestFindCommand_NotFoundStillClosesSession(t *testing.T) {
	fake := &fakeAppium{notFound: 1}
	_, err := run(t, fake, "-p", "android", "find", "--value", "Missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no such element") {
		t.Errorf("expected no such element, got %v", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !fake.deleted {
		t.Error("session was not deleted after failure")
	}
}

func TestFindCommand_RequiresValue(t *testing.T) {
	_, err := run(t, &fakeAppium{}, "-p", "android", "find")
	if err == nil {
		t.Error("expected error when --value is missing")
	}
}

func TestFindCommand_RequiresPlatform(t *testing.T) {
	_, err := run(t, &fakeAppium{}, "find", "--value", "x")
	if err == nil || !strings.Contains(err.Error(), "platformName") {
		t.Errorf("expected platformName error, got %v", err)
	}
}

func TestSourceCommand_WithConfigAndCaps(t *testing.T) {
	dir := t.TempDir()
	capsPath := filepath.Join(dir, "caps.yaml")
	if err := os.WriteFile(capsPath, []byte("platformName: iOS\nbundleId: com.example\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("capabilities:\n  appium:udid: sim-1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeAppium{}
	out, err := run(t, fake, "--config", configPath, "--caps", capsPath, "source")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "<hierarchy/>" {
		t.Errorf("unexpected output %q", out)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if fake.caps["appium:bundleId"] != "com.example" {
		t.Errorf("expected prefixed bundleId, got %v", fake.caps)
	}
	if fake.caps["appium:udid"] != "sim-1" {
		t.Errorf("expected udid from config, got %v", fake.caps)
	}
}

const sampleSource = `<hierarchy>
  <android.widget.FrameLayout bounds="[0,0][1080,1920]">
    <android.widget.Button text="Sign in" resource-id="com.example:id/login" bounds="[0,0][100,50]" clickable="true" enabled="true"/>
    <android.widget.TextView text="Welcome" bounds="[0,60][100,90]" enabled="true"/>
  </android.widget.FrameLayout>
</hierarchy>`

func TestSourceCommand_CSV(t *testing.T) {
	out, err := run(t, &fakeAppium{source: sampleSource}, "-p", "android", "source", "--format", "csv", "--clickable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "depth,tag,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Sign in") || !strings.HasSuffix(lines[1], "id,com.example:id/login") {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestSourceCommand_JSON(t *testing.T) {
	out, err := run(t, &fakeAppium{source: sampleSource}, "-p", "android", "source", "--format", "json", "--text", "welcome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json output %q: %v", out, err)
	}
	if len(rows) != 1 || rows[0]["text"] != "Welcome" {
		t.Fatalf("expected the Welcome row, got %v", rows)
	}
	if rows[0]["using"] != "-android uiautomator" {
		t.Errorf("expected a UiSelector locator, got %v", rows[0]["using"])
	}
}

func TestSourceCommand_XPath(t *testing.T) {
	out, err := run(t, &fakeAppium{source: sampleSource}, "-p", "android", "source", "--format", "csv", "--xpath", "//android.widget.TextView")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Welcome") {
		t.Errorf("expected only the Welcome row, got %q", out)
	}
}

func TestSourceCommand_UnknownFormat(t *testing.T) {
	fake := &fakeAppium{}
	if _, err := run(t, fake, "-p", "android", "source", "--format", "yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.paths) != 0 {
		t.Errorf("no request expected, got %v", fake.paths)
	}
}

func TestScreenshotCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "shot.png")
	if _, err := run(t, &fakeAppium{}, "-p", "android", "screenshot", target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("expected PNG data, got %q", data)
	}
}

func TestScreenshotCommand_NoArgs(t *testing.T) {
	if _, err := run(t, &fakeAppium{}, "-p", "android", "screenshot"); err == nil {
		t.Error("expected error without output file")
	}
}

func TestVerboseWithLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "appium-go.log")
	if _, err := run(t, &fakeAppium{}, "--log-file", logFile, "-p", "android", "source"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "session created") {
		t.Errorf("expected session log entry, got %q", data)
	}
}

func TestPlatformName(t *testing.T) {
	tests := map[string]string{"ios": "iOS", "IOS": "iOS", "android": "Android", "tizen": "tizen"}
	for in, want := range tests {
		if got := platformName(in); got != want {
			t.Errorf("platformName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetColor(t *testing.T) {
	if got := getColor(true, color.FgRed).Sprint("x"); got != "x" {
		t.Errorf("disabled color should print plain text, got %q", got)
	}
	if got := getColor(false, color.FgRed).Sprint("x"); got == "x" || !strings.Contains(got, "x") {
		t.Errorf("enabled color should wrap text in escapes, got %q", got)
	}
}

func TestStatusCommand_NoColorInBuffer(t *testing.T) {
	out, err := run(t, &fakeAppium{}, "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output to a buffer must not be colored: %q", out)
	}
}
