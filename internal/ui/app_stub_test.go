//go:build !fyne

package ui

import (
	"strings"
	"testing"
)

func TestRunStub_PointsAtFyneTag(t *testing.T) {
	err := Run("board.json")
	if err == nil {
		t.Fatal("headless build must refuse to start the UI")
	}
	if !strings.Contains(err.Error(), "-tags fyne") {
		t.Fatalf("error should tell the user how to rebuild, got %q", err)
	}
	if !strings.Contains(err.Error(), "godashboard") {
		t.Fatalf("error should name the entrypoint, got %q", err)
	}
}
