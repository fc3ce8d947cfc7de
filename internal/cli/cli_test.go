// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jmylchreest/swatch/internal/cli"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/export"
)

// clearEnv unsets every SWATCH_* setting for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvColours,
		config.EnvFormat,
		config.EnvTimeout,
		config.EnvMaxFetchBytes,
		config.EnvAllowPrivate,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// writeTestImage writes a 10x10 PNG whose first 6 columns are red and the
// remaining 4 blue.
func writeTestImage(t *testing.T) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			c := color.NRGBA{R: 255, A: 255}
			if x >= 6 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestExtractFormats(t *testing.T) {
	clearEnv(t)
	imagePath := writeTestImage(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hex", []string{"-f", "hex"}, "#ff0000\n#0000ff\n"},
		{"rgb", []string{"-f", "rgb"}, "rgb(255, 0, 0)\nrgb(0, 0, 255)\n"},
		{"css single colour", []string{"-f", "css", "-c", "1"}, "--color-1: #ff0000;\n"},
		{"scss", []string{"-f", "scss"}, "$color-1: #ff0000;\n$color-2: #0000ff;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"extract", imagePath}, tt.args...)
			out, _, err := run(t, args...)
			if err != nil {
				t.Fatalf("extract failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestExtractTable(t *testing.T) {
	clearEnv(t)

	out, _, err := run(t, "extract", writeTestImage(t), "--variations", "--harmonies")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	for _, want := range []string{
		"Red", "Blue", "60.0%", "40.0%",
		"Variations of #ff0000:", "#190000",
		"Harmonies of #ff0000:", "Split Complementary:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("preview should be off when stdout is not a terminal")
	}
}

func TestExtractJSON(t *testing.T) {
	clearEnv(t)

	out, _, err := run(t, "extract", writeTestImage(t), "-f", "json", "--select", "1", "--variations")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var doc export.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(doc.Colors) != 2 || doc.Colors[0].Percentage != 60 {
		t.Errorf("colors = %+v", doc.Colors)
	}
	if doc.Selected == nil || doc.Selected.Hex != "#0000ff" {
		t.Errorf("selected = %+v, want #0000ff", doc.Selected)
	}
	if len(doc.Variations) != 9 {
		t.Errorf("got %d variations, want 9", len(doc.Variations))
	}
	if doc.Extracted.IsZero() {
		t.Error("extracted timestamp missing")
	}
}

func TestExtractErrors(t *testing.T) {
	clearEnv(t)
	imagePath := writeTestImage(t)

	notImage := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(notImage, []byte("dummy image data"), 0o600); err != nil {
		t.Fatalf("Failed to create dummy file: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"zero colours", []string{"extract", imagePath, "-c", "0"}, "colour count must be at least 1"},
		{"too many colours", []string{"extract", imagePath, "-c", "300"}, "colour count too large"},
		{"unknown format", []string{"extract", imagePath, "-f", "gpl"}, "unsupported format"},
		{"selection out of range", []string{"extract", imagePath, "--select", "5"}, "invalid selection"},
		{"missing file", []string{"extract", "/nonexistent/image.png"}, "image file not found"},
		{"not an image", []string{"extract", notImage}, "unsupported or invalid image format"},
		{"private url", []string{"extract", "http://127.0.0.1/a.png"}, "private"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExtractPNGFile(t *testing.T) {
	clearEnv(t)
	outPath := filepath.Join(t.TempDir(), "palette.png")

	if _, _, err := run(t, "extract", writeTestImage(t), "-f", "png", "-o", outPath); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(200, 140) {
		t.Errorf("PNG size = %v, want 200x140", got)
	}
}

func TestExtractBundle(t *testing.T) {
	clearEnv(t)
	bundlePath := filepath.Join(t.TempDir(), "palette.tar.xz")

	out, _, err := run(t, "extract", writeTestImage(t), "-f", "hex", "--bundle", bundlePath)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if out != "#ff0000\n#0000ff\n" {
		t.Errorf("stdout = %q", out)
	}

	f, err := os.Open(bundlePath)
	if err != nil {
		t.Fatalf("bundle not written: %v", err)
	}
	defer f.Close()

	files, err := export.ReadBundle(f)
	if err != nil {
		t.Fatalf("ReadBundle() error = %v", err)
	}
	if len(files) != 6 {
		t.Errorf("bundle has %d files, want 6", len(files))
	}
	if got := string(files["color-palette.css"]); got != "--color-1: #ff0000;\n--color-2: #0000ff;\n" {
		t.Errorf("css entry = %q", got)
	}
}

func TestExtractVerboseLogging(t *testing.T) {
	clearEnv(t)

	_, stderr, err := run(t, "extract", writeTestImage(t), "-v", "-f", "hex")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	for _, want := range []string{"loading image", "palette extracted: colours=2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}

	_, stderr, err = run(t, "extract", writeTestImage(t), "-q", "-f", "hex")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("quiet mode should not log, got %q", stderr)
	}
}

func TestExtractEnvFile(t *testing.T) {
	clearEnv(t)

	envPath := filepath.Join(t.TempDir(), "swatch.env")
	if err := os.WriteFile(envPath, []byte("SWATCH_COLOURS=1\nSWATCH_FORMAT=hex\n"), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	out, _, err := run(t, "--env-file", envPath, "extract", writeTestImage(t))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if out != "#ff0000\n" {
		t.Errorf("output = %q, want a single hex line", out)
	}

	// Flags still win over the env file.
	out, _, err = run(t, "--env-file", envPath, "extract", writeTestImage(t), "-c", "2")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if out != "#ff0000\n#0000ff\n" {
		t.Errorf("output = %q, want two hex lines", out)
	}
}

func TestExtractPlugin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell plugins are not supported on windows")
	}
	clearEnv(t)

	dir := t.TempDir()
	pluginPath := filepath.Join(dir, "swatch-test-plugin")
	script := `#!/bin/sh
if [ "$1" = "--plugin-info" ]; then
  echo '{"name":"test","version":"1.0.0","protocol_version":"0.1.0","plugin_protocol":"json-stdio"}'
  exit 0
fi
cat > /dev/null
printf '%s\n' '{"files":{"palette.gpl":"GIMP Palette\n"}}'
`
	if err := os.WriteFile(pluginPath, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write plugin: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	if _, _, err := run(t, "extract", writeTestImage(t), "--plugin", pluginPath, "-o", outDir); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "palette.gpl"))
	if err != nil {
		t.Fatalf("plugin output not written: %v", err)
	}
	if string(data) != "GIMP Palette\n" {
		t.Errorf("palette.gpl = %q", data)
	}
}

func TestHarmonyCommand(t *testing.T) {
	clearEnv(t)

	out, _, err := run(t, "harmony", "#ff0000")
	if err != nil {
		t.Fatalf("harmony failed: %v", err)
	}
	for _, want := range []string{"Complementary:", "#00ffff", "#00ff00", "#ff0080"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "harmony", "--json", "ff0000")
	if err != nil {
		t.Fatalf("harmony --json failed: %v", err)
	}
	var set map[string][]string
	if err := json.Unmarshal([]byte(out), &set); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(set["Triadic"]) != 3 {
		t.Errorf("triadic = %v", set["Triadic"])
	}

	if _, _, err := run(t, "harmony", "#zzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestVariationsCommand(t *testing.T) {
	clearEnv(t)

	out, _, err := run(t, "variations", "646464")
	if err != nil {
		t.Fatalf("variations failed: %v", err)
	}
	for _, want := range []string{"-90%", "#0a0a0a", "Base", "#646464", "+90%", "#bebebe"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSampleCommand(t *testing.T) {
	clearEnv(t)
	outPath := filepath.Join(t.TempDir(), "sunset.png")

	if _, _, err := run(t, "sample", "sunset", "-o", outPath); err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("sample not written: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("sample is not a PNG: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Errorf("sample size = %dx%d, want 400x300", cfg.Width, cfg.Height)
	}

	if _, _, err := run(t, "sample", "desert"); err == nil {
		t.Error("expected error for unknown sample")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "swatch version ") {
		t.Errorf("output = %q", out)
	}
}
