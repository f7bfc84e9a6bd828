package colorutil

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#1e293b")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	want := color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	if got != want {
		t.Errorf("ParseHex = %v, want %v", got, want)
	}
	if Hex(got) != "#1e293b" {
		t.Errorf("Hex = %q, want %q", Hex(got), "#1e293b")
	}

	for _, bad := range []string{"", "#123", "#zzzzzz", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestSwatches(t *testing.T) {
	if len(Swatches) != 5 {
		t.Fatalf("expected 5 swatches, got %d", len(Swatches))
	}
	s, ok := SwatchByName("slate")
	if !ok {
		t.Fatal("slate swatch not found")
	}
	back, ok := SwatchByColor(s.Color)
	if !ok || back.Name != "Slate" {
		t.Errorf("SwatchByColor = %q, %v", back.Name, ok)
	}
	if _, ok := SwatchByName("mauve"); ok {
		t.Error("unknown swatch should not be found")
	}
}

func TestLookupSwatch(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Amber", "Amber", true},
		{"paper", "Paper", true},
		{"#1E293B", "Slate", true},
		{"ec4899", "Rose", true},
		{"#123456", "", false},
		{"mauve", "", false},
	}
	for _, tt := range tests {
		sw, ok := LookupSwatch(tt.in)
		if ok != tt.wantOK || sw.Name != tt.want {
			t.Errorf("LookupSwatch(%q) = %q, %v, want %q, %v", tt.in, sw.Name, ok, tt.want, tt.wantOK)
		}
	}
}
