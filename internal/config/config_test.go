package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Input.Dir != "data" {
		t.Fatalf("expected input dir 'data', got %q", cfg.Input.Dir)
	}
	if cfg.Input.Pattern != "*.csv" {
		t.Fatalf("expected pattern '*.csv', got %q", cfg.Input.Pattern)
	}
	if cfg.Output.Suffix != ".md" {
		t.Fatalf("expected suffix '.md', got %q", cfg.Output.Suffix)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.Schema != "loan_summary" {
		t.Fatalf("expected schema loan_summary, got %q", cfg.Database.Schema)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	yaml := `
input:
  dir: /srv/loans
output:
  suffix: .report.md
server:
  port: "9090"
  cors_origins:
    - http://localhost:5173
redis:
  addr: localhost:6379
database:
  url: postgres://localhost/loans
  tag: nightly
`
	f, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(yaml)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg, err := Load(f.Name())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.Dir != "/srv/loans" {
		t.Fatalf("expected /srv/loans, got %q", cfg.Input.Dir)
	}
	if cfg.Input.Pattern != "*.csv" {
		t.Fatalf("expected default pattern to apply, got %q", cfg.Input.Pattern)
	}
	if cfg.Output.Suffix != ".report.md" {
		t.Fatalf("expected .report.md, got %q", cfg.Output.Suffix)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 1 {
		t.Fatalf("expected 1 cors origin, got %d", len(cfg.Server.CORSOrigins))
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("expected redis addr, got %q", cfg.Redis.Addr)
	}
	if cfg.Database.Schema != "loan_summary" {
		t.Fatalf("expected default schema to apply, got %q", cfg.Database.Schema)
	}
	if cfg.Database.Tag != "nightly" {
		t.Fatalf("expected tag nightly, got %q", cfg.Database.Tag)
	}
}

func TestLoadRejectsBadSuffix(t *testing.T) {
	yaml := `
output:
  suffix: md
`
	f, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(yaml)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := Load(f.Name()); err == nil {
		t.Fatal("expected validation error for suffix without leading dot")
	}
}
