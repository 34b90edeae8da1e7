package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/gogpu/colorpick"
)

// prefKeyTheme stores "light" or "dark". Absent means follow the system.
const prefKeyTheme = "theme"

// variantTheme pins the default theme to one variant regardless of the
// system setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

var _ fyne.Theme = variantTheme{}

func (t variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// themeSettings is the part of fyne.Settings the switch needs.
type themeSettings interface {
	SetTheme(fyne.Theme)
	ThemeVariant() fyne.ThemeVariant
}

// stringPrefs is the part of fyne.Preferences the switch needs.
type stringPrefs interface {
	String(key string) string
	SetString(key, value string)
}

// themeSwitch toggles between light and dark and remembers the choice.
type themeSwitch struct {
	settings themeSettings
	prefs    stringPrefs
	variant  fyne.ThemeVariant
}

func newThemeSwitch(settings themeSettings, prefs stringPrefs) *themeSwitch {
	t := &themeSwitch{settings: settings, prefs: prefs}
	switch prefs.String(prefKeyTheme) {
	case "dark":
		t.variant = theme.VariantDark
	case "light":
		t.variant = theme.VariantLight
	default:
		t.variant = settings.ThemeVariant()
	}
	return t
}

func (t *themeSwitch) dark() bool {
	return t.variant == theme.VariantDark
}

func (t *themeSwitch) apply() {
	t.settings.SetTheme(variantTheme{Theme: theme.DefaultTheme(), variant: t.variant})
}

// toggle flips the variant, persists it and applies it.
func (t *themeSwitch) toggle() {
	name := "dark"
	if t.dark() {
		t.variant = theme.VariantLight
		name = "light"
	} else {
		t.variant = theme.VariantDark
	}
	t.prefs.SetString(prefKeyTheme, name)
	t.apply()
	colorpick.Logger().Debug("theme switched", "theme", name)
}

// label names the variant the toggle switches to.
func (t *themeSwitch) label() string {
	if t.dark() {
		return "Light mode"
	}
	return "Dark mode"
}
