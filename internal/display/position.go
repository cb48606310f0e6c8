package display

import (
	"strconv"

	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/models"
)

// ResolvedPosition is the pixel placement for one breakpoint. Preset carries
// a named position; for custom positioning the four offsets are filled, with
// "auto" on any axis left unset at every tier.
type ResolvedPosition struct {
	Preset string `json:"preset,omitempty"`
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

// ResolvePosition resolves styling for the active breakpoint. Preset
// positions pass through untouched. Custom positions resolve each offset
// independently: the breakpoint tier wins when set, otherwise the default
// tier, otherwise "auto". Both top and bottom may come out set; offsets are
// applied top, right, bottom, left in that order, so on a conflicting axis
// the later one wins.
func ResolvePosition(styling models.ModalStyling, breakpoint string) ResolvedPosition {
	position := constants.NormalisePosition(styling.Position)
	if position != constants.PositionCustom {
		return ResolvedPosition{Preset: position}
	}

	custom := styling.CustomPosition
	if custom == nil {
		custom = &models.CustomPosition{}
	}

	var tier [4]*int
	switch constants.NormaliseBreakpoint(breakpoint) {
	case constants.BreakpointTablet:
		tier = [4]*int{custom.TopTablet, custom.RightTablet, custom.BottomTablet, custom.LeftTablet}
	case constants.BreakpointMobile:
		tier = [4]*int{custom.TopMobile, custom.RightMobile, custom.BottomMobile, custom.LeftMobile}
	default:
		tier = [4]*int{custom.Top, custom.Right, custom.Bottom, custom.Left}
	}
	base := [4]*int{custom.Top, custom.Right, custom.Bottom, custom.Left}

	return ResolvedPosition{
		Top:    resolveOffset(tier[0], base[0]),
		Right:  resolveOffset(tier[1], base[1]),
		Bottom: resolveOffset(tier[2], base[2]),
		Left:   resolveOffset(tier[3], base[3]),
	}
}

func resolveOffset(override, fallback *int) string {
	if override != nil {
		return strconv.Itoa(*override) + "px"
	}
	if fallback != nil {
		return strconv.Itoa(*fallback) + "px"
	}
	return "auto"
}
