package audit

import (
	"fmt"
	"strings"
)

// The renderers below produce the human-readable output mode. They are pure
// functions of their input: findings are never reordered beyond the stated
// grouping, so rendering the same result twice yields byte-identical text.

// RenderTouchTargets lists failing touch targets with size, area, and
// position, followed by a passing/failing count. Passing targets are
// counted but not listed.
func RenderTouchTargets(r TouchTargetResult) string {
	if r.Status != StatusOK {
		return fmt.Sprintf("Touch targets: unavailable (%s)\n", r.Reason)
	}
	var b strings.Builder
	b.WriteString("Touch Targets\n")
	passing, failing := 0, 0
	for _, f := range r.Findings {
		if f.MeetsMinimum {
			passing++
			continue
		}
		failing++
		fmt.Fprintf(&b, "  - %s: %.0f×%.0fpt (area %.0fpt²) at (%.0f, %.0f)\n",
			displayName(f.ViewID, f.Label), f.Frame.Width, f.Frame.Height,
			f.TouchableArea, f.Frame.X, f.Frame.Y)
		if f.Recommendation != "" {
			fmt.Fprintf(&b, "    %s\n", f.Recommendation)
		}
	}
	fmt.Fprintf(&b, "%d passing, %d failing\n", passing, failing)
	return b.String()
}

// RenderContrast lists AA failures first, then samples that pass AA but not
// AAA, then a tri-count summary. Samples passing AAA are only counted.
func RenderContrast(r ContrastResult) string {
	if r.Status != StatusOK {
		return fmt.Sprintf("Contrast: unavailable (%s)\n", r.Reason)
	}
	var failing, aaOnly []ContrastFinding
	aaa := 0
	for _, f := range r.Findings {
		switch {
		case !f.MeetsAA:
			failing = append(failing, f)
		case !f.MeetsAAA:
			aaOnly = append(aaOnly, f)
		default:
			aaa++
		}
	}

	var b strings.Builder
	b.WriteString("Contrast\n")
	if len(failing) > 0 {
		b.WriteString("Failing AA:\n")
		for _, f := range failing {
			writeContrastLine(&b, f)
		}
	}
	if len(aaOnly) > 0 {
		b.WriteString("Passing AA only:\n")
		for _, f := range aaOnly {
			writeContrastLine(&b, f)
		}
	}
	fmt.Fprintf(&b, "%d AAA, %d AA-only, %d failing\n", aaa, len(aaOnly), len(failing))
	return b.String()
}

func writeContrastLine(b *strings.Builder, f ContrastFinding) {
	fmt.Fprintf(b, "  - %s: ratio %.2f (%s on %s)", f.ViewID, f.ContrastRatio,
		f.Foreground.Hex, f.Background.Hex)
	if f.Text != "" {
		fmt.Fprintf(b, " %q", f.Text)
	}
	if f.FontSize > 0 {
		fmt.Fprintf(b, " at %.0fpt", f.FontSize)
	}
	b.WriteString("\n")
}

// RenderLayout prints one block per layout issue, or a single no-issues
// line when the category is clean.
func RenderLayout(r LayoutResult) string {
	if r.Status != StatusOK {
		return fmt.Sprintf("Layout: unavailable (%s)\n", r.Reason)
	}
	if len(r.Findings) == 0 {
		return "No layout issues detected\n"
	}
	var b strings.Builder
	b.WriteString("Layout Issues\n")
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "  - %s: %s\n", f.ViewID, f.Issue)
		fmt.Fprintf(&b, "    ambiguous layout: %t\n", f.HasAmbiguousLayout)
		fmt.Fprintf(&b, "    translatesAutoresizingMaskIntoConstraints: %t\n",
			f.TranslatesAutoresizingMaskIntoConstraints)
	}
	return b.String()
}

// RenderAccessibility groups findings by severity (high before medium,
// discovery order within each group) and ends with a total broken down by
// severity.
func RenderAccessibility(r AccessibilityResult) string {
	if r.Status != StatusOK {
		return fmt.Sprintf("Accessibility: unavailable (%s)\n", r.Reason)
	}
	if len(r.Findings) == 0 {
		return "No accessibility issues found\n"
	}

	var b strings.Builder
	b.WriteString("Accessibility\n")
	counts := make(map[Severity]int, 2)
	for _, sev := range []Severity{SeverityHigh, SeverityMedium} {
		header := false
		for _, f := range r.Findings {
			if f.Severity != sev {
				continue
			}
			if !header {
				fmt.Fprintf(&b, "%s:\n", titleCase(sev.String()))
				header = true
			}
			counts[sev]++
			fmt.Fprintf(&b, "  - %s: %s\n", displayName(f.ViewID, f.Type), f.Issue)
		}
	}
	fmt.Fprintf(&b, "%d issues (%d high, %d medium)\n",
		len(r.Findings), counts[SeverityHigh], counts[SeverityMedium])
	return b.String()
}

// RenderReport renders the full-audit report: one section per category in
// fixed order, each preceded by its summary line, then the overall total.
func RenderReport(rep Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accessibility Audit (capture %s)\n\n", rep.CaptureID)

	writeSection(&b, rep.TouchTargets.Status, rep.TouchTargets.Summary, RenderTouchTargets(rep.TouchTargets))
	writeSection(&b, rep.Contrast.Status, rep.Contrast.Summary, RenderContrast(rep.Contrast))
	writeSection(&b, rep.Layout.Status, rep.Layout.Summary, RenderLayout(rep.Layout))
	writeSection(&b, rep.Accessibility.Status, rep.Accessibility.Summary, RenderAccessibility(rep.Accessibility))

	fmt.Fprintf(&b, "Total issues: %d\n", rep.TotalIssues)
	return b.String()
}

func writeSection(b *strings.Builder, status Status, summary, body string) {
	if status == StatusOK && summary != "" {
		fmt.Fprintf(b, "%s\n", summary)
	}
	b.WriteString(body)
	b.WriteString("\n")
}

func displayName(viewID, qualifier string) string {
	if qualifier == "" {
		return viewID
	}
	return fmt.Sprintf("%s (%s)", viewID, qualifier)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
