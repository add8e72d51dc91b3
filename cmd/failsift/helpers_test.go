package main

import (
	"testing"

	"failsift/internal/store"
)

func TestResolveDBPath(t *testing.T) {
	t.Setenv("FAILSIFT_DB", "")

	if got := resolveDBPath("explicit.db"); got != "explicit.db" {
		t.Errorf("flag value should win, got %q", got)
	}
	if got := resolveDBPath(""); got != store.DefaultDBPath {
		t.Errorf("expected default path, got %q", got)
	}

	t.Setenv("FAILSIFT_DB", "/tmp/env.db")
	if got := resolveDBPath(""); got != "/tmp/env.db" {
		t.Errorf("env should win over default, got %q", got)
	}
	if got := resolveDBPath("flag.db"); got != "flag.db" {
		t.Errorf("flag should win over env, got %q", got)
	}
}
