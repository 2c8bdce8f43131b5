package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Fixed per-category summary templates, identical across rendering modes.

func touchSummary(failing int) string {
	if failing == 0 {
		return "All touch targets meet minimum size"
	}
	return fmt.Sprintf("%d elements below 44×44pt", failing)
}

func contrastSummary(failing int) string {
	if failing == 0 {
		return "All text meets WCAG AA contrast"
	}
	return fmt.Sprintf("%d elements fail WCAG AA contrast", failing)
}

func layoutSummary(issues int) string {
	if issues == 0 {
		return "No layout issues detected"
	}
	return fmt.Sprintf("%d layout issues detected", issues)
}

func accessibilitySummary(issues int) string {
	if issues == 0 {
		return "No accessibility issues found"
	}
	return fmt.Sprintf("%d accessibility issues found", issues)
}

// AuditTouchTargets runs the touch-target category alone, failing fast on a
// telemetry error.
func AuditTouchTargets(ctx context.Context, src Source) (TouchTargetResult, error) {
	raw, err := src.TouchTargets(ctx)
	if err != nil {
		return TouchTargetResult{}, fmt.Errorf("touch target telemetry: %w", err)
	}
	return touchResult(raw), nil
}

// AuditContrast runs the contrast category alone, failing fast on a
// telemetry error.
func AuditContrast(ctx context.Context, src Source) (ContrastResult, error) {
	samples, err := src.ContrastSamples(ctx)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("contrast telemetry: %w", err)
	}
	return contrastResult(samples), nil
}

// AuditLayout runs the layout category alone, failing fast on a telemetry
// error.
func AuditLayout(ctx context.Context, src Source) (LayoutResult, error) {
	raw, err := src.LayoutIssues(ctx)
	if err != nil {
		return LayoutResult{}, fmt.Errorf("layout telemetry: %w", err)
	}
	return layoutResult(raw), nil
}

// AuditAccessibility runs the derived accessibility category alone. It needs
// both the interactive-element and touch-target telemetry; either failing
// fails the whole call, since a lone category audit has no degraded mode.
func AuditAccessibility(ctx context.Context, src Source) (AccessibilityResult, error) {
	var (
		elements []InteractiveElement
		touchRaw []InteractiveElement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if elements, err = src.InteractiveElements(gctx); err != nil {
			return fmt.Errorf("interactive element telemetry: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if touchRaw, err = src.TouchTargets(gctx); err != nil {
			return fmt.Errorf("touch target telemetry: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return AccessibilityResult{}, err
	}

	return accessibilityResult(elements, ClassifyTouchTargets(touchRaw)), nil
}

// RunFullAudit runs every category against src with one telemetry request
// per category, issued concurrently. A category whose request fails is
// marked unavailable and contributes zero issues; the audit itself never
// fails. The accessibility derivation consumes the touch-target classifier
// output once both fetches have settled; if touch targets are unavailable
// it degrades to label coverage only.
func RunFullAudit(ctx context.Context, src Source) Report {
	var (
		elements    []InteractiveElement
		elementsErr error
		touchRaw    []InteractiveElement
		touchErr    error
		samples     []ContrastSample
		contrastErr error
		layoutRaw   []LayoutFinding
		layoutErr   error
	)

	// Each goroutine writes its own variable pair and never returns an
	// error: a failed category must not cancel the siblings.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		elements, elementsErr = src.InteractiveElements(gctx)
		return nil
	})
	g.Go(func() error {
		touchRaw, touchErr = src.TouchTargets(gctx)
		return nil
	})
	g.Go(func() error {
		samples, contrastErr = src.ContrastSamples(gctx)
		return nil
	})
	g.Go(func() error {
		layoutRaw, layoutErr = src.LayoutIssues(gctx)
		return nil
	})
	_ = g.Wait()

	report := Report{CaptureID: uuid.NewString()}

	if touchErr != nil {
		report.TouchTargets = TouchTargetResult{Status: StatusUnavailable, Reason: touchErr.Error()}
	} else {
		report.TouchTargets = touchResult(touchRaw)
	}

	if contrastErr != nil {
		report.Contrast = ContrastResult{Status: StatusUnavailable, Reason: contrastErr.Error()}
	} else {
		report.Contrast = contrastResult(samples)
	}

	if layoutErr != nil {
		report.Layout = LayoutResult{Status: StatusUnavailable, Reason: layoutErr.Error()}
	} else {
		report.Layout = layoutResult(layoutRaw)
	}

	if elementsErr != nil {
		report.Accessibility = AccessibilityResult{Status: StatusUnavailable, Reason: elementsErr.Error()}
	} else {
		var touchFindings []TouchTargetFinding
		if touchErr == nil {
			touchFindings = report.TouchTargets.Findings
		}
		report.Accessibility = accessibilityResult(elements, touchFindings)
	}

	// Each category's contribution is accumulated on its own statement so
	// no count can occlude or short-circuit another.
	total := 0
	total += report.TouchTargets.Issues()
	total += report.Contrast.Issues()
	total += report.Layout.Issues()
	total += report.Accessibility.Issues()
	report.TotalIssues = total

	report.Categories = map[Category]Status{
		CategoryTouchTargets:  report.TouchTargets.Status,
		CategoryContrast:      report.Contrast.Status,
		CategoryLayout:        report.Layout.Status,
		CategoryAccessibility: report.Accessibility.Status,
	}
	return report
}

func touchResult(raw []InteractiveElement) TouchTargetResult {
	r := TouchTargetResult{Status: StatusOK, Findings: ClassifyTouchTargets(raw)}
	r.Summary = touchSummary(r.Issues())
	return r
}

func contrastResult(samples []ContrastSample) ContrastResult {
	r := ContrastResult{Status: StatusOK, Findings: ClassifyContrast(samples)}
	r.Summary = contrastSummary(r.Issues())
	return r
}

func layoutResult(raw []LayoutFinding) LayoutResult {
	r := LayoutResult{Status: StatusOK, Findings: ClassifyLayout(raw)}
	r.Summary = layoutSummary(r.Issues())
	return r
}

func accessibilityResult(elements []InteractiveElement, touch []TouchTargetFinding) AccessibilityResult {
	r := AccessibilityResult{Status: StatusOK, Findings: DeriveAccessibility(elements, touch)}
	r.Summary = accessibilitySummary(r.Issues())
	return r
}
