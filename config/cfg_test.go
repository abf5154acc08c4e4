package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Generate.OPFName != "content.opf" {
		t.Errorf("Default OPF name = %q, want content.opf", cfg.Generate.OPFName)
	}
	if !cfg.Generate.Verify {
		t.Error("Default verify = false, want true")
	}
	if cfg.Generate.Overwrite {
		t.Error("Default overwrite = true, want false")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Default file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
generate:
  opf_name: sicp.opf
  verify: false
  overwrite: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(dir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Generate.OPFName != "sicp.opf" || cfg.Generate.Verify || !cfg.Generate.Overwrite {
		t.Errorf("Generate = %+v", cfg.Generate)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File log mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_PartialFile(t *testing.T) {
	path := writeConfig(t, `version: 1
generate:
  opf_name: book.opf
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Generate.OPFName != "book.opf" {
		t.Errorf("OPF name = %q, want book.opf", cfg.Generate.OPFName)
	}
	if !cfg.Generate.Verify {
		t.Error("verify default was lost")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level default was lost: %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version: 2\n"},
		{"unknown field", "version: 1\ngenerate:\n  pack: true\n"},
		{"opf extension", "version: 1\ngenerate:\n  opf_name: content.xml\n"},
		{"log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"malformed", "version: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfiguration() expected error")
			}
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("LoadConfiguration() error = %v", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"version: 1", "opf_name: content.opf", "verify: true"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() output missing %q:\n%s", want, data)
		}
	}

	restored, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("dumped config is not valid: %v", err)
	}
	if restored.Generate != cfg.Generate {
		t.Errorf("restored Generate = %+v, want %+v", restored.Generate, cfg.Generate)
	}
}

func TestCleanFileName(t *testing.T) {
	if got := CleanFileName("..content.opf"); got != "content.opf" {
		t.Errorf("CleanFileName() = %q, want content.opf", got)
	}
	if got := CleanFileName(string(os.PathSeparator)); got != "_bad_file_name_" {
		t.Errorf("CleanFileName() = %q, want _bad_file_name_", got)
	}
	if got := CleanFileName("sub" + string(os.PathSeparator) + "book.opf"); got != "subbook.opf" {
		t.Errorf("CleanFileName() = %q, want subbook.opf", got)
	}
}
