package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"snapframe/pkg/colorutil"
)

// SnapframeTheme tints the default fyne theme with the selection color.
type SnapframeTheme struct{}

var _ fyne.Theme = (*SnapframeTheme)(nil)

func (t *SnapframeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.Selection
	case theme.ColorNameSelection:
		return colorutil.WithAlpha(colorutil.Selection, 0x60)
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *SnapframeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *SnapframeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *SnapframeTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return 6
	}
	return theme.DefaultTheme().Size(name)
}
