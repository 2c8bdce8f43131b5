package audit

import "testing"

func TestClassifyContrast_NormalTextThresholds(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		wantAA   bool
		wantAAA  bool
	}{
		{"aa_boundary", 4.5, true, false},
		{"just_below_aa", 4.49, false, false},
		{"aaa_boundary", 7.0, true, true},
		{"just_below_aaa", 6.99, true, false},
		{"fails_everything", 1.2, false, false},
		{"well_above", 21.0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := ClassifyContrast([]ContrastSample{
				{ViewID: "lbl1", Foreground: "#000000", Background: "#FFFFFF", Ratio: tt.ratio},
			})
			f := findings[0]
			if f.MeetsAA != tt.wantAA {
				t.Errorf("MeetsAA = %v, want %v", f.MeetsAA, tt.wantAA)
			}
			if f.MeetsAAA != tt.wantAAA {
				t.Errorf("MeetsAAA = %v, want %v", f.MeetsAAA, tt.wantAAA)
			}
		})
	}
}

func TestClassifyContrast_LargeText(t *testing.T) {
	tests := []struct {
		name     string
		fontSize float64
		bold     bool
		ratio    float64
		wantAA   bool
		wantAAA  bool
	}{
		{"large_regular_relaxed_aa", 18, false, 3.0, true, false},
		{"large_regular_relaxed_aaa", 18, false, 4.5, true, true},
		{"below_large_regular", 17, false, 3.0, false, false},
		{"large_bold", 14, true, 3.0, true, false},
		{"below_large_bold", 13, true, 3.0, false, false},
		{"unknown_size_conservative", 0, false, 3.0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := ClassifyContrast([]ContrastSample{
				{ViewID: "lbl1", Ratio: tt.ratio, FontSize: tt.fontSize, Bold: tt.bold},
			})
			f := findings[0]
			if f.MeetsAA != tt.wantAA || f.MeetsAAA != tt.wantAAA {
				t.Errorf("AA/AAA = %v/%v, want %v/%v", f.MeetsAA, f.MeetsAAA, tt.wantAA, tt.wantAAA)
			}
		})
	}
}

func TestClassifyContrast_DerivesRGB(t *testing.T) {
	findings := ClassifyContrast([]ContrastSample{
		{ViewID: "lbl1", Foreground: "#1A2B3C", Background: "FFFFFF", Ratio: 5},
	})
	fg := findings[0].Foreground
	if fg.R != 0x1A || fg.G != 0x2B || fg.B != 0x3C {
		t.Errorf("foreground RGB = %d,%d,%d, want 26,43,60", fg.R, fg.G, fg.B)
	}
	bg := findings[0].Background
	if bg.R != 255 || bg.G != 255 || bg.B != 255 {
		t.Errorf("background without '#' should still parse, got %d,%d,%d", bg.R, bg.G, bg.B)
	}
}

func TestParseColorSample_Malformed(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "#GGGGGG", "not-a-color"} {
		sample := ParseColorSample(hex)
		if sample.Hex != hex {
			t.Errorf("raw hex should be preserved, got %q", sample.Hex)
		}
		if sample.R != 0 || sample.G != 0 || sample.B != 0 {
			t.Errorf("malformed %q should yield zero RGB, got %d,%d,%d", hex, sample.R, sample.G, sample.B)
		}
	}
}

func TestClassifyContrast_PreservesOrder(t *testing.T) {
	samples := []ContrastSample{
		{ViewID: "z", Ratio: 1},
		{ViewID: "a", Ratio: 10},
		{ViewID: "m", Ratio: 5},
	}
	findings := ClassifyContrast(samples)
	for i, s := range samples {
		if findings[i].ViewID != s.ViewID {
			t.Errorf("finding %d: ViewID = %s, want %s", i, findings[i].ViewID, s.ViewID)
		}
	}
}
