package domain

// Theme is the persisted visual preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored value to a Theme. Anything other than "light"
// falls back to dark.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Appearance is the visual state applied to the page for a theme.
type Appearance struct {
	Theme     Theme
	Variables []CSSVariable
	IconSrc   string
	HaloClass string
}

type CSSVariable struct {
	Name  string
	Value string
}

const (
	HaloLight = "glow-light"
	HaloDark  = "glow-dark"
)

// Appearance returns the style variables, toggle icon and halo class for t.
// The dark theme shows the light-mode icon so the toggle points at the other state.
func (t Theme) Appearance() Appearance {
	if t == ThemeLight {
		return Appearance{
			Theme: ThemeLight,
			Variables: []CSSVariable{
				{Name: "--bg", Value: "#f9f9f9"},
				{Name: "--text", Value: "#111"},
				{Name: "--container-bg", Value: "#ffffff"},
				{Name: "--result-bg", Value: "#eeeeee"},
			},
			IconSrc:   "assets/DarkModeIcon.png",
			HaloClass: HaloDark,
		}
	}
	return Appearance{
		Theme: ThemeDark,
		Variables: []CSSVariable{
			{Name: "--bg", Value: "#111"},
			{Name: "--text", Value: "#eeeeee"},
			{Name: "--container-bg", Value: "#1b1b1b"},
			{Name: "--result-bg", Value: "#222"},
		},
		IconSrc:   "assets/LightModeIcon.png",
		HaloClass: HaloLight,
	}
}
