package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 8081
scheduler:
  implicit_idle: true
  max_processes: 10
  round_robin:
    time_quantum: 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := SchedulerConfig{Port: 8081, RoundRobinTimeQuantum: 4, ImplicitIdle: true, MaxProcesses: 10}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2, ImplicitIdle: false, MaxProcesses: 100}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "port: 8081\n")
	t.Setenv("SCHEDSIM_PORT", "7000")
	t.Setenv("SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7000 || cfg.RoundRobinTimeQuantum != 5 {
		t.Errorf("env override not applied: %+v", *cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing explicit file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"malformed yaml", writeConfig(t, "port: [1, 2\n")},
		{"bad port", writeConfig(t, "port: 70000\n")},
		{"negative quantum", writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: -1\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
