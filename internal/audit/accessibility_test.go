package audit

import (
	"strings"
	"testing"

	"simaudit/internal/model"
)

func TestDeriveAccessibility_MissingLabelAndUndersized(t *testing.T) {
	elements := []InteractiveElement{
		{ViewID: "btn1", Type: "Button", Label: ""},
	}
	touch := []TouchTargetFinding{
		{ViewID: "btn1", Frame: model.Rect{Width: 30, Height: 30}, MeetsMinimum: false},
	}

	findings := DeriveAccessibility(elements, touch)
	if len(findings) != 2 {
		t.Fatalf("expected exactly 2 findings, got %d", len(findings))
	}

	if findings[0].Severity != SeverityHigh {
		t.Errorf("first finding severity = %s, want high", findings[0].Severity)
	}
	if findings[0].Issue != "Missing accessibility label" {
		t.Errorf("first finding issue = %q", findings[0].Issue)
	}
	if findings[1].Severity != SeverityMedium {
		t.Errorf("second finding severity = %s, want medium", findings[1].Severity)
	}
	if !strings.Contains(findings[1].Issue, "30×30pt") || !strings.Contains(findings[1].Issue, "44×44pt") {
		t.Errorf("size finding should embed actual and minimum dimensions, got %q", findings[1].Issue)
	}
}

func TestDeriveAccessibility_ContainersExempt(t *testing.T) {
	elements := []InteractiveElement{
		{ViewID: "group1", Type: "Other", Label: ""},
		{ViewID: "btn1", Type: "Button", Label: "Save"},
	}
	findings := DeriveAccessibility(elements, nil)
	if len(findings) != 0 {
		t.Errorf("expected no findings, got %d", len(findings))
	}
}

func TestDeriveAccessibility_TypeLookup(t *testing.T) {
	elements := []InteractiveElement{
		{ViewID: "btn1", Type: "Button", Label: "Save"},
	}
	touch := []TouchTargetFinding{
		{ViewID: "btn1", Frame: model.Rect{Width: 20, Height: 20}, MeetsMinimum: false},
		{ViewID: "mystery", Frame: model.Rect{Width: 20, Height: 20}, MeetsMinimum: false},
	}
	findings := DeriveAccessibility(elements, touch)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].Type != "Button" {
		t.Errorf("known element should carry its type, got %q", findings[0].Type)
	}
	if findings[1].Type != "" {
		t.Errorf("unknown element should carry no type, got %q", findings[1].Type)
	}
}

func TestDeriveAccessibility_PassingTouchTargetsIgnored(t *testing.T) {
	touch := []TouchTargetFinding{
		{ViewID: "ok1", Frame: model.Rect{Width: 44, Height: 44}, MeetsMinimum: true},
	}
	findings := DeriveAccessibility(nil, touch)
	if len(findings) != 0 {
		t.Errorf("expected no findings for passing targets, got %d", len(findings))
	}
}

func TestDeriveAccessibility_LabelFindingsFirst(t *testing.T) {
	elements := []InteractiveElement{
		{ViewID: "a", Type: "Button"},
		{ViewID: "b", Type: "Link"},
	}
	touch := []TouchTargetFinding{
		{ViewID: "c", MeetsMinimum: false},
	}
	findings := DeriveAccessibility(elements, touch)
	want := []string{"a", "b", "c"}
	if len(findings) != len(want) {
		t.Fatalf("expected %d findings, got %d", len(want), len(findings))
	}
	for i, id := range want {
		if findings[i].ViewID != id {
			t.Errorf("finding %d: ViewID = %s, want %s", i, findings[i].ViewID, id)
		}
	}
}
