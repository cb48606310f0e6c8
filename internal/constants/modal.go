package constants

import "strings"

const (
	// TriggerManual fires only on an explicit call from the embedding page.
	TriggerManual = "manual"
	// TriggerTime fires after trigger_value seconds on the page.
	TriggerTime = "time"
	// TriggerScroll fires past trigger_value percent of document height.
	TriggerScroll = "scroll"
	// TriggerExit fires on an exit-intent signal from the client.
	TriggerExit = "exit"
	// TriggerClick fires when the element matching trigger_value is activated.
	TriggerClick = "click"
)

const (
	// TargetingAll shows the modal on every page.
	TargetingAll = "all"
	// TargetingSpecific shows the modal only on listed page patterns.
	TargetingSpecific = "specific"
	// TargetingExclude shows the modal everywhere except listed patterns.
	TargetingExclude = "exclude"
)

const (
	FrequencyAlways     = "always"
	FrequencyOnce       = "once"
	FrequencyOncePerDay = "once_per_day"
	FrequencyOnceAWeek  = "once_per_week"
)

const (
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"
	DeviceMobile  = "mobile"
)

const (
	BreakpointDefault = "default"
	BreakpointTablet  = "tablet"
	BreakpointMobile  = "mobile"
)

// PositionCustom selects pixel positioning via the custom_position record.
const PositionCustom = "custom"

var triggerTypes = []string{TriggerManual, TriggerTime, TriggerScroll, TriggerExit, TriggerClick}

var targetingModes = []string{TargetingAll, TargetingSpecific, TargetingExclude}

var frequencies = []string{FrequencyAlways, FrequencyOnce, FrequencyOncePerDay, FrequencyOnceAWeek}

var deviceClasses = []string{DeviceDesktop, DeviceTablet, DeviceMobile}

var modalPositions = []string{
	"center",
	"top-left",
	"top-center",
	"top-right",
	"middle-left",
	"middle-right",
	"bottom-left",
	"bottom-center",
	"bottom-right",
	"top-bar",
	"bottom-bar",
	"left-sidebar",
	"right-sidebar",
}

// ModalPositions returns the preset position names (custom excluded).
// A copy of the slice is returned to prevent external mutation of the internal list.
func ModalPositions() []string {
	positions := make([]string, len(modalPositions))
	copy(positions, modalPositions)
	return positions
}

func normalise(value, fallback string, allowed []string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	for _, a := range allowed {
		if a == value {
			return value
		}
	}
	return fallback
}

// NormaliseTriggerType returns a known trigger type or manual.
func NormaliseTriggerType(value string) string {
	return normalise(value, TriggerManual, triggerTypes)
}

// NormaliseTargeting returns a known page-targeting mode or all.
func NormaliseTargeting(value string) string {
	return normalise(value, TargetingAll, targetingModes)
}

// NormaliseFrequency returns a known frequency or always.
func NormaliseFrequency(value string) string {
	return normalise(value, FrequencyAlways, frequencies)
}

// NormaliseDevice returns a known device class or the empty string.
func NormaliseDevice(value string) string {
	return normalise(value, "", deviceClasses)
}

// NormaliseDevices drops unknown device classes and duplicates, preserving
// order. The empty set is kept as-is: it means the modal never matches.
func NormaliseDevices(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		device := NormaliseDevice(v)
		if device == "" || seen[device] {
			continue
		}
		seen[device] = true
		out = append(out, device)
	}
	return out
}

// NormalisePosition returns a preset position, custom, or center.
func NormalisePosition(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == PositionCustom {
		return PositionCustom
	}
	return normalise(value, "center", modalPositions)
}

// NormaliseBreakpoint returns a known breakpoint tier or default.
func NormaliseBreakpoint(value string) string {
	return normalise(value, BreakpointDefault, []string{BreakpointDefault, BreakpointTablet, BreakpointMobile})
}
