package audit

// ClassifyLayout maps raw layout telemetry through unchanged. There are no
// thresholds to apply; the value of the mapping is that an empty slice comes
// out as a real, non-nil "no issues" result, while availability is tracked
// separately at the result level.
func ClassifyLayout(raw []LayoutFinding) []LayoutFinding {
	findings := make([]LayoutFinding, 0, len(raw))
	findings = append(findings, raw...)
	return findings
}
