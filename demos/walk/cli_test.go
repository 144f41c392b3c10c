package main

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HEADLESS", "")

	opts, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.ConfigPath != defaultConfigPath {
		t.Errorf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.LogLevel != "" || opts.Headless || opts.Watch || opts.Frames != 0 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseArgsFlags(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HEADLESS", "")

	opts, err := ParseArgs([]string{
		"-config", "my.yaml", "-log-level", "debug", "-headless",
		"-frames", "120", "-script", "s.json", "-watch",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	want := Options{ConfigPath: "my.yaml", LogLevel: "debug", Headless: true, Frames: 120, Script: "s.json", Watch: true}
	if *opts != want {
		t.Errorf("got %+v, want %+v", *opts, want)
	}
}

func TestParseArgsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("HEADLESS", "true")

	opts, err := ParseArgs([]string{"-frames", "10"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.LogLevel != "warn" || !opts.Headless {
		t.Errorf("env not applied: %+v", opts)
	}
}

func TestParseArgsFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("HEADLESS", "")

	opts, err := ParseArgs([]string{"-log-level", "debug"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", opts.LogLevel)
	}
}

func TestParseArgsErrors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HEADLESS", "")

	tests := []struct {
		name string
		args []string
	}{
		{"bad level", []string{"-log-level", "loud"}},
		{"negative frames", []string{"-frames", "-1"}},
		{"headless without work", []string{"-headless"}},
		{"positional", []string{"extra"}},
		{"unknown flag", []string{"-fullscreen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	opts, err := ParseArgs([]string{"-h"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opts.ShowHelp {
		t.Error("ShowHelp not set")
	}
}
