package audit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"simaudit/internal/model"
)

var errTest = errors.New("telemetry failed")

func TestRenderTouchTargets_FailingOnly(t *testing.T) {
	result := touchResult([]InteractiveElement{
		{ViewID: "ok1", Label: "Save", Frame: model.Rect{Width: 48, Height: 48}},
		{ViewID: "bad1", Label: "Close", Frame: model.Rect{X: 10, Y: 20, Width: 30, Height: 30}},
	})
	text := RenderTouchTargets(result)

	if strings.Contains(text, "ok1") {
		t.Error("passing targets must not be listed")
	}
	if !strings.Contains(text, "bad1") {
		t.Error("failing target missing from output")
	}
	if !strings.Contains(text, "30×30pt") || !strings.Contains(text, "area 900pt²") {
		t.Errorf("failing line should state size and area:\n%s", text)
	}
	if !strings.Contains(text, "at (10, 20)") {
		t.Errorf("failing line should state position:\n%s", text)
	}
	if !strings.HasSuffix(text, "1 passing, 1 failing\n") {
		t.Errorf("output should end with pass/fail count:\n%s", text)
	}
}

func TestRenderContrast_Grouping(t *testing.T) {
	result := contrastResult([]ContrastSample{
		{ViewID: "aaa1", Ratio: 8.0},
		{ViewID: "fail1", Ratio: 2.0},
		{ViewID: "aaOnly1", Ratio: 5.0},
		{ViewID: "fail2", Ratio: 3.0},
	})
	text := RenderContrast(result)

	failIdx := strings.Index(text, "Failing AA:")
	aaOnlyIdx := strings.Index(text, "Passing AA only:")
	if failIdx < 0 || aaOnlyIdx < 0 || failIdx > aaOnlyIdx {
		t.Fatalf("failing group must precede AA-only group:\n%s", text)
	}
	if strings.Index(text, "fail1") > strings.Index(text, "fail2") {
		t.Errorf("discovery order not preserved within group:\n%s", text)
	}
	if strings.Contains(text, "aaa1") {
		t.Error("AAA passes should only be counted, not listed")
	}
	if !strings.HasSuffix(text, "1 AAA, 1 AA-only, 2 failing\n") {
		t.Errorf("output should end with tri-count summary:\n%s", text)
	}
}

func TestRenderLayout_NoIssuesLine(t *testing.T) {
	text := RenderLayout(layoutResult(nil))
	if text != "No layout issues detected\n" {
		t.Errorf("unexpected output: %q", text)
	}
}

func TestRenderLayout_Blocks(t *testing.T) {
	text := RenderLayout(layoutResult([]LayoutFinding{
		{ViewID: "v1", Issue: "Ambiguous layout", HasAmbiguousLayout: true},
	}))
	if !strings.Contains(text, "v1: Ambiguous layout") {
		t.Errorf("missing issue block:\n%s", text)
	}
	if !strings.Contains(text, "ambiguous layout: true") {
		t.Errorf("missing ambiguous flag:\n%s", text)
	}
}

func TestRenderAccessibility_SeverityGrouping(t *testing.T) {
	result := accessibilityResult(
		[]InteractiveElement{{ViewID: "btn1", Type: "Button"}},
		[]TouchTargetFinding{{ViewID: "btn2", Frame: model.Rect{Width: 30, Height: 30}, MeetsMinimum: false}},
	)
	text := RenderAccessibility(result)

	highIdx := strings.Index(text, "High:")
	mediumIdx := strings.Index(text, "Medium:")
	if highIdx < 0 || mediumIdx < 0 || highIdx > mediumIdx {
		t.Fatalf("high group must precede medium group:\n%s", text)
	}
	if !strings.HasSuffix(text, "2 issues (1 high, 1 medium)\n") {
		t.Errorf("output should end with severity breakdown:\n%s", text)
	}
}

func TestRenderAccessibility_Clean(t *testing.T) {
	text := RenderAccessibility(accessibilityResult(nil, nil))
	if text != "No accessibility issues found\n" {
		t.Errorf("unexpected output: %q", text)
	}
}

func TestRenderUnavailableCategory(t *testing.T) {
	text := RenderContrast(ContrastResult{Status: StatusUnavailable, Reason: "bridge unreachable"})
	if !strings.Contains(text, "unavailable") || !strings.Contains(text, "bridge unreachable") {
		t.Errorf("unavailable rendering should name the reason: %q", text)
	}
}

func TestRenderReport_Deterministic(t *testing.T) {
	src := &fakeSource{
		touch:    []InteractiveElement{smallButton("btn1")},
		elements: []InteractiveElement{smallButton("btn1")},
		samples:  []ContrastSample{{ViewID: "lbl1", Ratio: 3.0}},
		layout:   []LayoutFinding{{ViewID: "v1", Issue: "Ambiguous layout"}},
	}
	report := RunFullAudit(context.Background(), src)

	first := RenderReport(report)
	second := RenderReport(report)
	if first != second {
		t.Error("rendering the same report twice must be byte-identical")
	}
	if !strings.Contains(first, report.CaptureID) {
		t.Error("report header should carry the capture ID")
	}
	if !strings.Contains(first, "Total issues: 5") {
		t.Errorf("expected total of 5 (1 touch + 1 contrast + 1 layout + 2 accessibility):\n%s", first)
	}
}

func TestRenderReport_UnavailableSectionsFlagged(t *testing.T) {
	report := RunFullAudit(context.Background(), &fakeSource{
		elementsErr: errTest, touchErr: errTest, samplesErr: errTest, layoutErr: errTest,
	})
	text := RenderReport(report)
	if got := strings.Count(text, "unavailable"); got < 4 {
		t.Errorf("all four sections must be flagged unavailable, saw %d:\n%s", got, text)
	}
	if !strings.Contains(text, "Total issues: 0") {
		t.Errorf("all-failing audit must report zero issues:\n%s", text)
	}
}
