package audit

// WCAG 2.1 contrast-ratio thresholds.
const (
	aaNormalRatio  = 4.5
	aaLargeRatio   = 3.0
	aaaNormalRatio = 7.0
	aaaLargeRatio  = 4.5

	largeTextPt     = 18.0
	largeTextBoldPt = 14.0
)

// isLargeText reports whether a font size qualifies for the relaxed "large
// text" thresholds. A zero font size means the size is unknown, so the
// stricter normal-text thresholds apply.
func isLargeText(fontSize float64, bold bool) bool {
	if fontSize <= 0 {
		return false
	}
	if bold {
		return fontSize >= largeTextBoldPt
	}
	return fontSize >= largeTextPt
}

// ClassifyContrast evaluates each sample's precomputed ratio against the
// WCAG AA and AAA tiers. Both tiers are judged independently: a sample can
// pass AAA only by also passing AA numerically, but neither flag is derived
// from the other. Output preserves input order.
func ClassifyContrast(samples []ContrastSample) []ContrastFinding {
	findings := make([]ContrastFinding, 0, len(samples))
	for _, s := range samples {
		aa, aaa := aaNormalRatio, aaaNormalRatio
		if isLargeText(s.FontSize, s.Bold) {
			aa, aaa = aaLargeRatio, aaaLargeRatio
		}
		findings = append(findings, ContrastFinding{
			ViewID:        s.ViewID,
			Foreground:    ParseColorSample(s.Foreground),
			Background:    ParseColorSample(s.Background),
			ContrastRatio: s.Ratio,
			MeetsAA:       s.Ratio >= aa,
			MeetsAAA:      s.Ratio >= aaa,
			Text:          s.Text,
			FontSize:      s.FontSize,
		})
	}
	return findings
}
