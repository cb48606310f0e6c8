package display

import (
	"testing"

	"launchkit-backend/internal/models"
)

func intPtr(v int) *int { return &v }

func TestResolvePositionPresetPassesThrough(t *testing.T) {
	styling := models.ModalStyling{Position: "bottom-right"}

	got := ResolvePosition(styling, "mobile")
	if got.Preset != "bottom-right" {
		t.Fatalf("expected preset to pass through, got %+v", got)
	}
	if got.Top != "" || got.Left != "" {
		t.Fatalf("preset positions must not carry offsets, got %+v", got)
	}
}

func TestResolvePositionUnknownPresetFallsBackToCenter(t *testing.T) {
	got := ResolvePosition(models.ModalStyling{Position: "upside-down"}, "desktop")
	if got.Preset != "center" {
		t.Fatalf("expected center fallback, got %q", got.Preset)
	}
}

func TestResolvePositionCustomBreakpointFallback(t *testing.T) {
	styling := models.ModalStyling{
		Position: "custom",
		CustomPosition: &models.CustomPosition{
			Top:       intPtr(100),
			Left:      intPtr(40),
			TopMobile: intPtr(20),
		},
	}

	desktop := ResolvePosition(styling, "desktop")
	if desktop.Top != "100px" || desktop.Left != "40px" {
		t.Fatalf("unexpected desktop offsets: %+v", desktop)
	}
	if desktop.Right != "auto" || desktop.Bottom != "auto" {
		t.Fatalf("unset axes must resolve to auto, got %+v", desktop)
	}

	// Mobile overrides top only; left falls back to the default tier.
	mobile := ResolvePosition(styling, "mobile")
	if mobile.Top != "20px" {
		t.Fatalf("expected mobile top override, got %+v", mobile)
	}
	if mobile.Left != "40px" {
		t.Fatalf("expected left fallback to default tier, got %+v", mobile)
	}

	// Tablet has no overrides at all, so every axis uses the default tier.
	tablet := ResolvePosition(styling, "tablet")
	if tablet.Top != "100px" || tablet.Left != "40px" {
		t.Fatalf("unexpected tablet offsets: %+v", tablet)
	}
}

func TestResolvePositionCustomWithoutOffsets(t *testing.T) {
	styling := models.ModalStyling{Position: "custom"}

	got := ResolvePosition(styling, "desktop")
	if got.Top != "auto" || got.Right != "auto" || got.Bottom != "auto" || got.Left != "auto" {
		t.Fatalf("expected all-auto resolution, got %+v", got)
	}
}

func TestResolvePositionZeroOffsetIsNotAuto(t *testing.T) {
	styling := models.ModalStyling{
		Position:       "custom",
		CustomPosition: &models.CustomPosition{Top: intPtr(0)},
	}

	got := ResolvePosition(styling, "desktop")
	if got.Top != "0px" {
		t.Fatalf("zero is a real offset, got %+v", got)
	}
}
