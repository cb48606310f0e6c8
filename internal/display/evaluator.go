package display

import (
	"strconv"
	"strings"
	"time"

	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/models"
	"launchkit-backend/pkg/logger"
)

// Evaluator decides whether a modal should display for one runtime context.
// Nothing is persisted per attempt; only impressions touch the history store.
type Evaluator struct {
	history HistoryStore
}

func NewEvaluator(history HistoryStore) *Evaluator {
	if history == nil {
		history = NewMemoryHistory()
	}
	return &Evaluator{history: history}
}

// Context is the runtime state of one display attempt, reported by the
// embedding script. Only the fields relevant to the modal's trigger type are
// consulted.
type Context struct {
	Path      string
	Device    string
	VisitorID string
	SessionID string
	Now       time.Time

	SecondsOnPage   float64
	ScrollPercent   float64
	ExitIntent      bool
	ClickedSelector string
	Manual          bool
}

// Suppression reasons reported on a negative decision.
const (
	ReasonPage      = "page"
	ReasonDevice    = "device"
	ReasonFrequency = "frequency"
	ReasonTrigger   = "trigger"
)

// Decision is the evaluation outcome. Reason is empty when Display is true.
type Decision struct {
	Display bool   `json:"display"`
	Reason  string `json:"reason,omitempty"`
}

// Evaluate runs the four gates in order: page match, device match, frequency
// cap, trigger readiness. The modal displays iff all pass.
func (e *Evaluator) Evaluate(modal *models.Modal, ctx Context) Decision {
	if !MatchPage(modal.DisplayRules, ctx.Path) {
		return Decision{Reason: ReasonPage}
	}
	if !matchDevice(modal.DisplayRules, ctx.Device) {
		return Decision{Reason: ReasonDevice}
	}
	if !e.frequencyEligible(modal, ctx) {
		return Decision{Reason: ReasonFrequency}
	}
	if !TriggerFired(modal.TriggerType, modal.TriggerValue, ctx) {
		return Decision{Reason: ReasonTrigger}
	}
	return Decision{Display: true}
}

// Matches reports whether the modal targets this page and device at all,
// ignoring frequency and trigger state. Used to pre-filter candidates the
// embedding script should bother wiring up.
func (e *Evaluator) Matches(modal *models.Modal, path, device string) bool {
	return MatchPage(modal.DisplayRules, path) && matchDevice(modal.DisplayRules, device)
}

// RecordImpression marks the modal shown for this visitor and session.
func (e *Evaluator) RecordImpression(modalID uint, visitorID, sessionID string, at time.Time) error {
	return e.history.RecordImpression(modalID, visitorID, sessionID, at)
}

// MatchPage applies the page-targeting rule to the current URL path.
func MatchPage(rules models.DisplayRules, path string) bool {
	switch constants.NormaliseTargeting(rules.PageTargeting) {
	case constants.TargetingAll:
		return true
	case constants.TargetingSpecific:
		return matchAnyPattern(rules.Pages, path)
	case constants.TargetingExclude:
		return !matchAnyPattern(rules.Pages, path)
	}
	return false
}

func matchAnyPattern(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if MatchPattern(pattern, path) {
			return true
		}
	}
	return false
}

// MatchPattern matches a URL path against one page-targeting entry. A
// trailing "/*" means prefix match on the segment before the star: "/blog/*"
// matches "/blog/my-post" and "/blog/a/b" but not "/blog" or "/blogging".
// The home page is the literal "/". Only a trailing wildcard participates;
// interior stars are rejected at validation time.
func MatchPattern(pattern, path string) bool {
	pattern = normalizePath(pattern)
	path = normalizePath(path)

	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(path, prefix) && len(path) > len(prefix)
	}
	return pattern == path
}

// normalizePath guarantees a leading slash and strips the trailing one, so
// "/blog/" and "/blog" compare equal. The root stays "/".
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// matchDevice requires membership: an empty device set is an explicit
// opt-out, not "match all".
func matchDevice(rules models.DisplayRules, device string) bool {
	device = constants.NormaliseDevice(device)
	if device == "" {
		return false
	}
	for _, d := range rules.Devices {
		if constants.NormaliseDevice(d) == device {
			return true
		}
	}
	return false
}

// frequencyEligible consults the history store. Store failures log and fail
// open: showing a marketing modal once too often beats never showing it.
func (e *Evaluator) frequencyEligible(modal *models.Modal, ctx Context) bool {
	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	switch constants.NormaliseFrequency(modal.DisplayRules.Frequency) {
	case constants.FrequencyAlways:
		return true
	case constants.FrequencyOnce:
		shown, err := e.history.ShownInSession(modal.ID, ctx.VisitorID, ctx.SessionID)
		if err != nil {
			logger.Error(err, "Failed to read session history, allowing display", map[string]interface{}{"modal_id": modal.ID})
			return true
		}
		return !shown
	case constants.FrequencyOncePerDay:
		return e.outsideWindow(modal.ID, ctx.VisitorID, now, sameDay)
	case constants.FrequencyOnceAWeek:
		return e.outsideWindow(modal.ID, ctx.VisitorID, now, sameWeek)
	}
	return true
}

func (e *Evaluator) outsideWindow(modalID uint, visitorID string, now time.Time, within func(a, b time.Time) bool) bool {
	last, ok, err := e.history.LastShown(modalID, visitorID)
	if err != nil {
		logger.Error(err, "Failed to read impression history, allowing display", map[string]interface{}{"modal_id": modalID})
		return true
	}
	if !ok {
		return true
	}
	return !within(last, now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func sameWeek(a, b time.Time) bool {
	ay, aw := a.UTC().ISOWeek()
	by, bw := b.UTC().ISOWeek()
	return ay == by && aw == bw
}

// TriggerFired reports whether the configured trigger condition is met by
// the runtime context. The event wiring lives in the embedding script; this
// is only the readiness decision over the reported state.
func TriggerFired(triggerType, triggerValue string, ctx Context) bool {
	switch constants.NormaliseTriggerType(triggerType) {
	case constants.TriggerManual:
		return ctx.Manual
	case constants.TriggerTime:
		return ctx.SecondsOnPage >= triggerThreshold(triggerValue)
	case constants.TriggerScroll:
		return ctx.ScrollPercent >= triggerThreshold(triggerValue)
	case constants.TriggerExit:
		return ctx.ExitIntent
	case constants.TriggerClick:
		return ctx.ClickedSelector != "" && strings.TrimSpace(triggerValue) == ctx.ClickedSelector
	}
	return false
}

func triggerThreshold(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
