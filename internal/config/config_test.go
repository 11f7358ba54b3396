package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Server != defaultServer {
		t.Fatalf("expected default server %q, got %q", defaultServer, cfg.App.Server)
	}
	if !cfg.App.ShowFooter {
		t.Fatal("expected footer enabled by default")
	}
	if cfg.App.Check {
		t.Fatal("expected check mode disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"LEDGERTERM_SERVER=env-host:1", "LEDGERTERM_WIDTH=100"}
	cfg, err := LoadArgs([]string{"-server", "flag-host:2", "-trace"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Server != "flag-host:2" {
		t.Fatalf("expected flag to win, got %q", cfg.App.Server)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected env width 100, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatal("expected trace enabled")
	}
	if cfg.Flags["server"] != "flag-host:2" {
		t.Fatalf("expected flags map to record server, got %q", cfg.Flags["server"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestValidateRequiresServer(t *testing.T) {
	cfg, err := LoadArgs([]string{"-server", " "}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for blank server")
	}
	cfg, _ = LoadArgs(nil, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}
