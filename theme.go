package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// boardTheme is a custom theme that darkens the chrome around the grid
// so the colored marks stand out.
type boardTheme struct {
	fyne.Theme
}

// newBoardTheme wraps the provided theme.
func newBoardTheme(t fyne.Theme) fyne.Theme {
	return &boardTheme{Theme: t}
}

// Color overrides the default color for specific widget states.
func (t *boardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	// The window background is near-black so the cell rectangles read as a grid.
	if name == theme.ColorNameBackground {
		return color.NRGBA{R: 24, G: 24, B: 24, A: 255}
	}
	// Disabled text should be slightly grey to show it's disabled.
	if name == theme.ColorNameDisabled {
		return color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	}
	// Dialog and overlay backgrounds should be opaque and visible.
	if name == theme.ColorNameOverlayBackground {
		return color.NRGBA{R: 0, G: 0, B: 0, A: 180}
	}
	// Hover color for menu items and selected items.
	if name == theme.ColorNameHover || name == theme.ColorNamePressed {
		return color.NRGBA{R: 60, G: 100, B: 180, A: 200}
	}
	// Ensure all normal text is white and visible.
	if name == theme.ColorNameForeground {
		return color.White
	}
	// For all other colors, use the default from the base theme.
	return t.Theme.Color(name, variant)
}

// Variant returns the theme variant. By declaring the theme as dark,
// Fyne will automatically use light-colored text and icons.
func (t *boardTheme) Variant() fyne.ThemeVariant {
	return theme.VariantDark
}
