package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suns.yaml")
	data := []byte("listen: 0.0.0.0:9000\nsite: http://localhost:8081/\ntimeout: 3s\npage: /broken\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.Site != "http://localhost:8081" {
		t.Errorf("expected trailing slash to be trimmed, got %q", cfg.Site)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, expected 3s", cfg.Timeout)
	}
	if cfg.Page != defaultPage {
		t.Errorf("expected page without %%s to fall back to default, got %q", cfg.Page)
	}
	if cfg.Institution != defaultInstitution {
		t.Errorf("Institution = %q", cfg.Institution)
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suns.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected error when loading invalid yaml, got nil")
	}
}

func TestDefaultPreset(t *testing.T) {
	deps, err := LoadDepartments("")
	if err != nil {
		t.Fatalf("failed to load embedded preset: %v", err)
	}
	spec, err := deps.Lookup("ISiT")
	if err != nil {
		t.Fatalf("expected isit to be configured: %v", err)
	}
	if spec.Link == "" {
		t.Errorf("isit link is empty")
	}
}

func TestLookupUnknown(t *testing.T) {
	deps, err := ParseDepartments([]byte("isit:\n  link: fmit\n  row: 0\nmath:\n  link: math\n  row: 1\n"))
	if err != nil {
		t.Fatalf("ParseDepartments failed: %v", err)
	}

	_, err = deps.Lookup("bio")
	if !errors.Is(err, ErrUnknownDepartment) {
		t.Fatalf("expected ErrUnknownDepartment, got %v", err)
	}

	var unknown *UnknownDepartmentError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownDepartmentError, got %T", err)
	}
	if !reflect.DeepEqual(unknown.Known, []string{"isit", "math"}) {
		t.Errorf("expected all configured codes, got %v", unknown.Known)
	}
	if unknown.Error() != "found `bio` expected one of: [isit, math]" {
		t.Errorf("unexpected message: %s", unknown.Error())
	}
}

func TestParseDepartmentsMixedCase(t *testing.T) {
	deps, err := ParseDepartments([]byte("ISiT:\n  link: fmit\n  row: 1\n"))
	if err != nil {
		t.Fatalf("ParseDepartments failed: %v", err)
	}
	if !reflect.DeepEqual(deps.Codes(), []string{"isit"}) {
		t.Errorf("expected normalized codes, got %v", deps.Codes())
	}

	for _, code := range []string{"ISiT", "isit", " ISIT "} {
		spec, err := deps.Lookup(code)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", code, err)
			continue
		}
		if spec.Link != "fmit" || spec.Row != 1 {
			t.Errorf("Lookup(%q) = %+v", code, spec)
		}
	}
}

func TestParseDepartmentsInvalid(t *testing.T) {
	tests := map[string]string{
		"collision":   "ISiT:\n  link: fmit\nisit:\n  link: math\n",
		"nested link": "isit:\n  link: fmit/isit\n",
		"empty code":  "\"  \":\n  link: fmit\n",
	}
	for name, preset := range tests {
		if _, err := ParseDepartments([]byte(preset)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseDepartmentsEmptyLink(t *testing.T) {
	if _, err := ParseDepartments([]byte("isit:\n  row: 1\n")); err == nil {
		t.Errorf("expected error for department without link")
	}
}

func TestFilterConfig(t *testing.T) {
	var f FilterConfig
	_ = f.TutorMatcher.MatchRaw.Set("~^Sm")
	_ = f.PlaceMatcher.MatchRaw.Set("101")
	if err := f.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if !f.Match(sessionOf("Math", "Smith", "101")) {
		t.Errorf("expected Smith in 101 to match")
	}
	if f.Match(sessionOf("Math", "Jones", "101")) {
		t.Errorf("expected Jones to be rejected")
	}
	if f.Match(sessionOf("Math", "Smith", "202")) {
		t.Errorf("expected place 202 to be rejected")
	}

	var bad FilterConfig
	_ = bad.NameMatcher.MatchRaw.Set("~(")
	if err := bad.Init(); err == nil {
		t.Errorf("expected invalid regexp to fail Init")
	}
}
