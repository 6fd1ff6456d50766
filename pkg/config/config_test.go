package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sysreport.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.OutputPath != "./Logs" {
		t.Fatalf("unexpected default output path: %q", cfg.OutputPath)
	}
	if cfg.TopN != 10 {
		t.Fatalf("unexpected default top_n: %d", cfg.TopN)
	}
	if cfg.ExcludeSystem {
		t.Fatalf("exclude_system should default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
output_path: /var/reports
top_n: 3
exclude_system: true
exclude_processes:
  - chrome
  - Slack
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputPath != "/var/reports" {
		t.Fatalf("output_path not applied: %q", cfg.OutputPath)
	}
	if cfg.TopN != 3 {
		t.Fatalf("top_n not applied: %d", cfg.TopN)
	}
	if !cfg.ExcludeSystem {
		t.Fatalf("exclude_system not applied")
	}
	if len(cfg.ExcludeProcesses) != 2 || cfg.ExcludeProcesses[1] != "Slack" {
		t.Fatalf("exclude_processes not applied: %v", cfg.ExcludeProcesses)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "exclude_system: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputPath != "./Logs" || cfg.TopN != 10 {
		t.Fatalf("defaults lost on partial file: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zeroTopN", "top_n: 0\n"},
		{"negativeTopN", "top_n: -4\n"},
		{"emptyOutputPath", "output_path: \"\"\n"},
		{"blankExclusion", "exclude_processes: [\"\"]\n"},
		{"notYAML", "top_n: [unclosed\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error for %q", tc.content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
