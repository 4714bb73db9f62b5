package theme

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// fyneAdapter maps a loaded Theme onto the fyne.Theme interface.
// Roles the theme does not define fall through to the stock dark theme.
type fyneAdapter struct {
	theme Theme
	base  fyne.Theme
}

// NewFyneTheme wraps a theme for use with app.Settings().SetTheme.
func NewFyneTheme(t Theme) fyne.Theme {
	return &fyneAdapter{theme: t, base: fynetheme.DefaultTheme()}
}

func (a *fyneAdapter) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	fallback := a.base.Color(name, variant)

	switch name {
	case fynetheme.ColorNameBackground:
		return a.theme.RGBA(RoleWindowBg, fallback)
	case fynetheme.ColorNameInputBackground:
		return a.theme.RGBA(RoleEditorBg, fallback)
	case fynetheme.ColorNameForeground:
		return a.theme.RGBA(RoleEditorFg, fallback)
	case fynetheme.ColorNameSelection:
		return a.theme.RGBA(RoleSelectionBg, fallback)
	case fynetheme.ColorNameButton:
		return a.theme.RGBA(RoleButtonBg, fallback)
	case fynetheme.ColorNameHover:
		return a.theme.RGBA(RoleButtonHoverBg, fallback)
	case fynetheme.ColorNamePressed:
		return a.theme.RGBA(RoleHighlight, fallback)
	case fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return a.theme.RGBA(RoleMenuBg, fallback)
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return a.theme.RGBA(RoleAccent, fallback)
	case fynetheme.ColorNameSeparator, fynetheme.ColorNameInputBorder:
		return a.theme.RGBA(RoleBorder, fallback)
	case fynetheme.ColorNamePlaceHolder:
		return a.theme.RGBA(RoleStatusBarFg, fallback)
	default:
		return fallback
	}
}

func (a *fyneAdapter) Font(style fyne.TextStyle) fyne.Resource {
	// Theme files name a family, not a font file; the closest honest
	// mapping is steering entries toward the bundled monospace face.
	if strings.Contains(strings.ToLower(a.theme.Font.Family), "mono") && !style.Monospace {
		style.Monospace = true
	}
	return a.base.Font(style)
}

func (a *fyneAdapter) Icon(name fyne.ThemeIconName) fyne.Resource {
	return a.base.Icon(name)
}

func (a *fyneAdapter) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case fynetheme.SizeNameText:
		return float32(a.theme.Font.Size)
	case fynetheme.SizeNameInputRadius, fynetheme.SizeNameSelectionRadius:
		if a.theme.Effects.Rounded || a.theme.Effects.Glass {
			return 6
		}
		return 2
	default:
		return a.base.Size(name)
	}
}
