package theme

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color role keys used by theme definitions. Unknown keys are carried
// through untouched so themes can define more roles than the UI reads.
const (
	RoleWindowBg      = "window_bg"
	RoleEditorBg      = "editor_bg"
	RoleEditorFg      = "editor_fg"
	RoleBorder        = "border"
	RoleSelectionBg   = "selection_bg"
	RoleSelectionFg   = "selection_fg"
	RoleTabActiveBg   = "tab_active_bg"
	RoleTabText       = "tab_text"
	RoleMenuBg        = "menu_bg"
	RoleMenuFg        = "menu_fg"
	RoleStatusBarBg   = "status_bar_bg"
	RoleStatusBarFg   = "status_bar_fg"
	RoleButtonBg      = "button_bg"
	RoleButtonFg      = "button_fg"
	RoleButtonHoverBg = "button_hover_bg"
	RoleHighlight     = "highlight"
	RoleAccent        = "accent"
	RoleGlassShine    = "glass_shine"
)

// FontSpec is the default editor font carried by a theme.
type FontSpec struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
}

// Effects are boolean visual flags a theme may opt into.
type Effects struct {
	Glass   bool `json:"glass"`
	Rounded bool `json:"rounded"`
}

// Theme is a named bundle of color, font, and effect settings.
// Immutable once loaded; any number coexist, one is active per session.
type Theme struct {
	ID          string            `json:"-"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Colors      map[string]string `json:"colors"`
	Font        FontSpec          `json:"font"`
	Effects     Effects           `json:"effects"`
}

// Parse decodes a theme definition. The id is the file stem; the name
// falls back to the id when the definition omits it.
func Parse(id string, data []byte) (Theme, error) {
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %q: %w", id, err)
	}
	t.ID = id
	if t.Name == "" {
		t.Name = id
	}
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
	if t.Font.Family == "" {
		t.Font.Family = "monospace"
	}
	if t.Font.Size <= 0 {
		t.Font.Size = 11
	}
	return t, nil
}

// Color resolves a role to its value string, or the given default when
// the theme does not define the role.
func (t Theme) Color(role, fallback string) string {
	if v, ok := t.Colors[role]; ok && v != "" {
		return v
	}
	return fallback
}

// RGBA resolves a role to a concrete color, falling back when the role
// is absent or its value cannot be parsed.
func (t Theme) RGBA(role string, fallback color.Color) color.Color {
	v, ok := t.Colors[role]
	if !ok || v == "" {
		return fallback
	}
	c, err := ParseColor(v)
	if err != nil {
		return fallback
	}
	return c
}

// ParseColor understands #rgb, #rrggbb, #rrggbbaa hex forms and the
// rgba(r,g,b,a) notation the original theme files use for glass shine.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return parseRGBA(s[5 : len(s)-1])
	}
	return nil, fmt.Errorf("unsupported color %q", s)
}

func parseHex(hex string) (color.Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return nil, fmt.Errorf("bad hex color length %d", len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q: %w", hex, err)
	}

	if len(hex) == 8 {
		return color.NRGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func parseRGBA(body string) (color.Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("rgba() wants 4 components, got %d", len(parts))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("bad rgba() channel %q", parts[i])
		}
		channels[i] = uint8(n)
	}

	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("bad rgba() alpha %q", parts[3])
	}

	return color.NRGBA{
		R: channels[0],
		G: channels[1],
		B: channels[2],
		A: uint8(alpha*255 + 0.5),
	}, nil
}
