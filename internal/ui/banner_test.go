package ui

import (
	"os"
	"strings"
	"testing"
)

func TestBannerRendersMultipleLines(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	banner, err := Banner("RSA", "standard")
	if err != nil {
		t.Fatalf("Banner failed: %v", err)
	}

	if strings.Count(banner, "\n") < 3 {
		t.Errorf("Expected multi-line ASCII art, got: %q", banner)
	}
	if !strings.HasSuffix(banner, "\n") {
		t.Error("Banner should end with a newline")
	}
	if strings.Contains(banner, "\x1b[") {
		t.Errorf("Banner should not contain ANSI codes when NO_COLOR is set, got: %q", banner)
	}
}

func TestBannerUnknownFont(t *testing.T) {
	_, err := Banner("RSA", "no-such-font")
	if err == nil {
		t.Fatal("Expected an error for an unknown font")
	}
}
