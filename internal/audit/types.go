// Package audit classifies raw UI telemetry from a running simulator app
// into severity-ranked accessibility compliance findings, and merges the
// per-category results into a single report.
//
// The package never measures anything itself: frames, color samples, and
// contrast ratios arrive precomputed from the introspection bridge. What
// lives here is the decision logic — thresholds, severity assignment, and
// the partial-failure merge policy.
package audit

import (
	"fmt"
	"strconv"
	"strings"

	"simaudit/internal/model"
)

// Category identifies one audit category within a report.
type Category string

const (
	CategoryTouchTargets  Category = "touchTargets"
	CategoryContrast      Category = "contrast"
	CategoryLayout        Category = "layout"
	CategoryAccessibility Category = "accessibility"
)

// Status records whether a category's telemetry was retrievable.
// An available category with zero findings is a real "no issues" result;
// unavailable means the check could not run at all.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnavailable Status = "unavailable"
)

// InteractiveElement is a candidate tappable control reported by the bridge.
// An empty Label means no accessible name was found.
type InteractiveElement struct {
	ViewID string     `yaml:"viewId"          json:"viewId"`
	Type   string     `yaml:"type"            json:"type"`
	Label  string     `yaml:"label,omitempty" json:"label,omitempty"`
	Frame  model.Rect `yaml:"frame"           json:"frame"`
}

// TouchTargetFinding is one element's evaluation against the HIG minimum.
type TouchTargetFinding struct {
	ViewID         string     `yaml:"viewId"                   json:"viewId"`
	Label          string     `yaml:"label,omitempty"          json:"label,omitempty"`
	Frame          model.Rect `yaml:"frame"                    json:"frame"`
	TouchableArea  float64    `yaml:"touchableArea"            json:"touchableArea"`
	MeetsMinimum   bool       `yaml:"meetsMinimum"             json:"meetsMinimum"`
	Recommendation string     `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// ColorSample is a sampled color with its RGB components derived from hex.
type ColorSample struct {
	Hex string `yaml:"hex" json:"hex"`
	R   int    `yaml:"r"   json:"r"`
	G   int    `yaml:"g"   json:"g"`
	B   int    `yaml:"b"   json:"b"`
}

// ParseColorSample decodes a "#RRGGBB" hex string (leading '#' optional).
// Malformed input keeps the raw hex and zero RGB rather than failing: color
// strings are untrusted telemetry, not something worth aborting an audit for.
func ParseColorSample(hex string) ColorSample {
	sample := ColorSample{Hex: hex}
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return sample
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return sample
	}
	sample.R = int(v >> 16 & 0xFF)
	sample.G = int(v >> 8 & 0xFF)
	sample.B = int(v & 0xFF)
	return sample
}

// ContrastSample is the raw wire shape of one contrast measurement.
// The ratio is computed in-app; FontSize 0 means the text size is unknown.
type ContrastSample struct {
	ViewID     string  `yaml:"viewId"             json:"viewId"`
	Foreground string  `yaml:"foreground"         json:"foreground"`
	Background string  `yaml:"background"         json:"background"`
	Ratio      float64 `yaml:"ratio"              json:"ratio"`
	Text       string  `yaml:"text,omitempty"     json:"text,omitempty"`
	FontSize   float64 `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
	Bold       bool    `yaml:"bold,omitempty"     json:"bold,omitempty"`
}

// ContrastFinding is one sample's evaluation against the WCAG tiers.
// AA and AAA are judged independently against the same ratio.
type ContrastFinding struct {
	ViewID        string      `yaml:"viewId"             json:"viewId"`
	Foreground    ColorSample `yaml:"foreground"         json:"foreground"`
	Background    ColorSample `yaml:"background"         json:"background"`
	ContrastRatio float64     `yaml:"contrastRatio"      json:"contrastRatio"`
	MeetsAA       bool        `yaml:"meetsAA"            json:"meetsAA"`
	MeetsAAA      bool        `yaml:"meetsAAA"           json:"meetsAAA"`
	Text          string      `yaml:"text,omitempty"     json:"text,omitempty"`
	FontSize      float64     `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
}

// LayoutFinding is one Auto Layout issue reported by the bridge, passed
// through unchanged.
type LayoutFinding struct {
	ViewID                                    string `yaml:"viewId"                                    json:"viewId"`
	Issue                                     string `yaml:"issue"                                     json:"issue"`
	HasAmbiguousLayout                        bool   `yaml:"hasAmbiguousLayout"                        json:"hasAmbiguousLayout"`
	TranslatesAutoresizingMaskIntoConstraints bool   `yaml:"translatesAutoresizingMaskIntoConstraints" json:"translatesAutoresizingMaskIntoConstraints"`
}

// Severity orders accessibility findings for reporting. Lower values render
// first, so the order of constants is the display order.
type Severity int

const (
	SeverityHigh Severity = iota
	SeverityMedium
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalJSON serializes a severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// MarshalYAML serializes a severity as its lowercase name.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// AccessibilityFinding is a derived finding; severity is assigned here, not
// by the telemetry source.
type AccessibilityFinding struct {
	ViewID   string   `yaml:"viewId"         json:"viewId"`
	Type     string   `yaml:"type,omitempty" json:"type,omitempty"`
	Issue    string   `yaml:"issue"          json:"issue"`
	Severity Severity `yaml:"severity"       json:"severity"`
}

// TouchTargetResult is the touch-target category outcome within a report.
type TouchTargetResult struct {
	Status   Status               `yaml:"status"            json:"status"`
	Reason   string               `yaml:"reason,omitempty"  json:"reason,omitempty"`
	Summary  string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Findings []TouchTargetFinding `yaml:"findings"          json:"findings"`
}

// Issues returns the countable issue total this category contributes to a
// report. Unavailable categories contribute zero.
func (r TouchTargetResult) Issues() int {
	if r.Status != StatusOK {
		return 0
	}
	n := 0
	for _, f := range r.Findings {
		if !f.MeetsMinimum {
			n++
		}
	}
	return n
}

// ContrastResult is the contrast category outcome within a report.
type ContrastResult struct {
	Status   Status            `yaml:"status"            json:"status"`
	Reason   string            `yaml:"reason,omitempty"  json:"reason,omitempty"`
	Summary  string            `yaml:"summary,omitempty" json:"summary,omitempty"`
	Findings []ContrastFinding `yaml:"findings"          json:"findings"`
}

// Issues counts findings that fail the AA baseline.
func (r ContrastResult) Issues() int {
	if r.Status != StatusOK {
		return 0
	}
	n := 0
	for _, f := range r.Findings {
		if !f.MeetsAA {
			n++
		}
	}
	return n
}

// LayoutResult is the layout category outcome within a report.
type LayoutResult struct {
	Status   Status          `yaml:"status"            json:"status"`
	Reason   string          `yaml:"reason,omitempty"  json:"reason,omitempty"`
	Summary  string          `yaml:"summary,omitempty" json:"summary,omitempty"`
	Findings []LayoutFinding `yaml:"findings"          json:"findings"`
}

// Issues counts reported layout problems.
func (r LayoutResult) Issues() int {
	if r.Status != StatusOK {
		return 0
	}
	return len(r.Findings)
}

// AccessibilityResult is the derived accessibility category outcome.
type AccessibilityResult struct {
	Status   Status                 `yaml:"status"            json:"status"`
	Reason   string                 `yaml:"reason,omitempty"  json:"reason,omitempty"`
	Summary  string                 `yaml:"summary,omitempty" json:"summary,omitempty"`
	Findings []AccessibilityFinding `yaml:"findings"          json:"findings"`
}

// Issues counts derived accessibility findings.
func (r AccessibilityResult) Issues() int {
	if r.Status != StatusOK {
		return 0
	}
	return len(r.Findings)
}

// Report is the merged outcome of a full audit. TotalIssues sums only the
// available categories; unavailable ones are flagged in Categories and
// contribute zero.
type Report struct {
	CaptureID     string              `yaml:"captureId"     json:"captureId"`
	TouchTargets  TouchTargetResult   `yaml:"touchTargets"  json:"touchTargets"`
	Contrast      ContrastResult      `yaml:"contrast"      json:"contrast"`
	Layout        LayoutResult        `yaml:"layout"        json:"layout"`
	Accessibility AccessibilityResult `yaml:"accessibility" json:"accessibility"`
	TotalIssues   int                 `yaml:"totalIssues"   json:"totalIssues"`
	Categories    map[Category]Status `yaml:"categories"    json:"categories"`
}
