package audit

import "fmt"

// containerType is the generic grouping element type. Containers carry no
// accessible name of their own, so they are exempt from the label rule.
const containerType = "Other"

// missingLabelIssue is the fixed message for unlabeled interactive elements.
const missingLabelIssue = "Missing accessibility label"

// DeriveAccessibility folds two telemetry categories into derived findings:
// interactive elements missing an accessible name (high severity) and touch
// targets below the HIG minimum (medium severity). It takes the touch-target
// classifier's output by value so the dependency between the two stays an
// explicit data dependency.
//
// Label findings come first in element discovery order, then undersized
// findings in touch-target discovery order.
func DeriveAccessibility(elements []InteractiveElement, touch []TouchTargetFinding) []AccessibilityFinding {
	typeByView := make(map[string]string, len(elements))
	for _, el := range elements {
		typeByView[el.ViewID] = el.Type
	}

	findings := make([]AccessibilityFinding, 0)
	for _, el := range elements {
		if el.Type != containerType && el.Label == "" {
			findings = append(findings, AccessibilityFinding{
				ViewID:   el.ViewID,
				Type:     el.Type,
				Issue:    missingLabelIssue,
				Severity: SeverityHigh,
			})
		}
	}
	for _, t := range touch {
		if t.MeetsMinimum {
			continue
		}
		findings = append(findings, AccessibilityFinding{
			ViewID: t.ViewID,
			Type:   typeByView[t.ViewID],
			Issue: fmt.Sprintf("Touch target %.0f×%.0fpt is below the %.0f×%.0fpt minimum",
				t.Frame.Width, t.Frame.Height, MinTouchTarget, MinTouchTarget),
			Severity: SeverityMedium,
		})
	}
	return findings
}
