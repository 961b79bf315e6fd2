package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/wallpanel/wallpanel/internal/model"
)

// PanelTheme is a compact dark theme whose background is the configured
// translucent panel color
type PanelTheme struct {
	background color.NRGBA
}

// NewPanelTheme creates a theme using bg as the panel background
func NewPanelTheme(bg model.Color) *PanelTheme {
	return &PanelTheme{background: toNRGBA(bg)}
}

// Background returns the panel background color
func (t *PanelTheme) Background() color.NRGBA {
	return t.background
}

// Color returns theme colors
func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.background
	case theme.ColorNameForeground:
		return color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	case theme.ColorNameButton:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 30}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 24}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0, G: 191, B: 255, A: 255}
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		// Dialogs stay opaque so they remain readable over the desktop.
		bg := t.background
		bg.A = 255
		return bg
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 28
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

func toNRGBA(c model.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
