package audit

import "fmt"

// MinTouchTarget is the HIG minimum interactive element dimension in device
// points.
const MinTouchTarget = 44.0

// ClassifyTouchTargets evaluates each element's frame against the 44×44pt
// minimum. Output preserves input order and length. Zero or negative
// dimensions classify as failing rather than being skipped: a control the
// user cannot hit is a finding, not a non-measurement.
func ClassifyTouchTargets(elements []InteractiveElement) []TouchTargetFinding {
	findings := make([]TouchTargetFinding, 0, len(elements))
	for _, el := range elements {
		f := TouchTargetFinding{
			ViewID:        el.ViewID,
			Label:         el.Label,
			Frame:         el.Frame,
			TouchableArea: el.Frame.Width * el.Frame.Height,
			MeetsMinimum:  el.Frame.Width >= MinTouchTarget && el.Frame.Height >= MinTouchTarget,
		}
		if !f.MeetsMinimum {
			f.Recommendation = fmt.Sprintf(
				"Increase touchable area to at least %.0f×%.0fpt (currently %.0f×%.0fpt)",
				MinTouchTarget, MinTouchTarget, el.Frame.Width, el.Frame.Height)
		}
		findings = append(findings, f)
	}
	return findings
}
