package theme

import (
	"image/color"
	"testing"
)

func TestParseFillsDefaults(t *testing.T) {
	data := []byte(`{"colors": {"editor_bg": "#101010"}}`)
	th, err := Parse("minimal", data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if th.ID != "minimal" {
		t.Errorf("ID = %q", th.ID)
	}
	if th.Name != "minimal" {
		t.Errorf("Name should fall back to the id, got %q", th.Name)
	}
	if th.Font.Family != "monospace" || th.Font.Size != 11 {
		t.Errorf("font defaults not applied: %+v", th.Font)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse("bad", []byte("{")); err == nil {
		t.Error("malformed definition parsed without error")
	}
}

func TestColorFallback(t *testing.T) {
	th := Theme{Colors: map[string]string{RoleEditorBg: "#000000"}}

	if got := th.Color(RoleEditorBg, "#ffffff"); got != "#000000" {
		t.Errorf("defined role = %q", got)
	}
	if got := th.Color(RoleAccent, "#ff00ff"); got != "#ff00ff" {
		t.Errorf("missing role should fall back, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#1a2b3c", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{"#1a2b3c80", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}},
		{"rgba(255, 0, 128, 0.5)", color.NRGBA{R: 255, G: 0, B: 128, A: 128}},
		{"rgba(0,0,0,1)", color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "blue", "#12345", "rgba(1,2,3)", "rgba(300,0,0,1)", "rgba(0,0,0,2)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) accepted invalid input", in)
		}
	}
}

func TestRGBAFallsBackOnBadValue(t *testing.T) {
	th := Theme{Colors: map[string]string{RoleAccent: "not-a-color"}}
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}

	if got := th.RGBA(RoleAccent, fallback); got != fallback {
		t.Errorf("got %+v, want fallback", got)
	}
}
