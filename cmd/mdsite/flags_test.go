package main

import "testing"

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseBuildFlags(nil)
		if err != nil {
			t.Fatalf("parseBuildFlags() unexpected error: %v", err)
		}
		if f.common.root != "." {
			t.Errorf("root = %q, want .", f.common.root)
		}
		if f.workers != 0 || f.drafts || f.output != "" {
			t.Errorf("unexpected defaults: %+v", f)
		}
		if len(args) != 0 {
			t.Errorf("positional args = %v, want none", args)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseBuildFlags([]string{
			"-r", "/site", "-o", "/out", "-w", "4", "--drafts", "-q",
		})
		if err != nil {
			t.Fatalf("parseBuildFlags() unexpected error: %v", err)
		}
		if f.common.root != "/site" || f.output != "/out" || f.workers != 4 {
			t.Errorf("parsed = %+v", f)
		}
		if !f.drafts || !f.common.quiet {
			t.Errorf("boolean flags not set: %+v", f)
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseBuildFlags([]string{"--bogus"}); err == nil {
			t.Error("parseBuildFlags() should reject unknown flags")
		}
	})
}

func TestParseServeFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseServeFlags(nil)
		if err != nil {
			t.Fatalf("parseServeFlags() unexpected error: %v", err)
		}
		if f.addr != "localhost:8080" {
			t.Errorf("addr = %q, want localhost:8080", f.addr)
		}
		if !f.watch {
			t.Error("watch should default to true")
		}
		if !f.build.drafts {
			t.Error("serve should include drafts by default")
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseServeFlags([]string{"-a", ":9000", "--watch=false", "-c", "alt"})
		if err != nil {
			t.Fatalf("parseServeFlags() unexpected error: %v", err)
		}
		if f.addr != ":9000" || f.watch || f.build.common.config != "alt" {
			t.Errorf("parsed = %+v", f)
		}
	})
}
