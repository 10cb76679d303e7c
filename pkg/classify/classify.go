package classify

import (
	"strings"
)

// Default markers, matching the workout templates this tool was built around.
const (
	// DefaultTemplateMarker is the literal value the newer template keeps in
	// its layout marker cell until a coach fills in the client name.
	DefaultTemplateMarker = "Name: "

	// DefaultSkipDescription marks sheets that describe the gym's onboarding
	// program rather than a client workout.
	DefaultSkipDescription = "Foundation 1"
)

// Rules hold the strings that identify non-migratable sheets. The zero value
// is not useful; use DefaultRules or populate from configuration.
type Rules struct {
	// TemplateMarker invalidates a record when its layout marker cell equals
	// it exactly (an un-filled template).
	TemplateMarker string

	// SkipDescriptions invalidate a record when its resolved description
	// contains any of them as a substring.
	SkipDescriptions []string
}

// DefaultRules returns the rules matching the original workout templates.
func DefaultRules() Rules {
	return Rules{
		TemplateMarker:   DefaultTemplateMarker,
		SkipDescriptions: []string{DefaultSkipDescription},
	}
}

// Classification is the classifier's verdict on one record.
type Classification struct {
	Valid       bool   // whether the record is a real workout worth migrating
	Description string // layout-resolved workout description, e.g. "Week 1"
	Reason      string // human-readable reason when Valid is false
}

// Classify decides whether a record snapshot describes a migratable workout
// and extracts its description. It is deterministic and makes no remote
// calls, so layout quirks can be unit tested without a live store.
func (r Rules) Classify(s Snapshot) Classification {
	desc := s.Description()

	switch {
	case s.Empty():
		return Classification{Valid: false, Description: desc, Reason: "blank sheet"}
	case r.TemplateMarker != "" && s.LayoutMarker == r.TemplateMarker:
		return Classification{Valid: false, Description: desc, Reason: "unfilled template"}
	}

	for _, marker := range r.SkipDescriptions {
		if marker != "" && strings.Contains(desc, marker) {
			return Classification{Valid: false, Description: desc, Reason: "non-workout template: " + marker}
		}
	}

	return Classification{Valid: true, Description: desc}
}
