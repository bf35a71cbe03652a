package envutil

import (
	"testing"
	"time"
)

func TestStringFallsBackOnEmpty(t *testing.T) {
	t.Setenv("TEST_ENV_STR", "  ")
	if got := String("TEST_ENV_STR", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback got %q", got)
	}
	t.Setenv("TEST_ENV_STR", " value ")
	if got := String("TEST_ENV_STR", "fallback"); got != "value" {
		t.Fatalf("expected trimmed value got %q", got)
	}
}

func TestIntRejectsGarbage(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "not-a-number")
	if got := Int("TEST_ENV_INT", 42); got != 42 {
		t.Fatalf("expected default got %d", got)
	}
	t.Setenv("TEST_ENV_INT", "7")
	if got := Int("TEST_ENV_INT", 42); got != 7 {
		t.Fatalf("expected 7 got %d", got)
	}
}

func TestBoolVariants(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "on"} {
		t.Setenv("TEST_ENV_BOOL", v)
		if !Bool("TEST_ENV_BOOL", false) {
			t.Fatalf("expected %q to read true", v)
		}
	}
	for _, v := range []string{"0", "false", "No", "off"} {
		t.Setenv("TEST_ENV_BOOL", v)
		if Bool("TEST_ENV_BOOL", true) {
			t.Fatalf("expected %q to read false", v)
		}
	}
	t.Setenv("TEST_ENV_BOOL", "maybe")
	if !Bool("TEST_ENV_BOOL", true) {
		t.Fatalf("expected default for unparseable value")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("TEST_ENV_DUR", "90s")
	if got := Duration("TEST_ENV_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s got %v", got)
	}
	t.Setenv("TEST_ENV_DUR", "soon")
	if got := Duration("TEST_ENV_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected default got %v", got)
	}
}
