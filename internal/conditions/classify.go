package conditions

import (
	"skyglance/internal/locale"

	"golang.org/x/text/language"
)

// Color is a display color in hex notation.
type Color string

// Bucket colors. Icon and color share the same coarse range grouping;
// only the description is keyed by the exact code.
const (
	ColorClear        Color = "#ffd54f" // warm yellow
	ColorPartlyCloudy Color = "#fff176" // light yellow
	ColorOvercast     Color = "#90a4ae" // gray
	ColorFog          Color = "#cfd8dc" // light gray
	ColorDrizzle      Color = "#81d4fa" // light blue
	ColorRain         Color = "#42a5f5" // medium blue
	ColorRainShowers  Color = "#1e88e5" // darker blue
	ColorSnow         Color = "#b3e5fc" // pale blue
	ColorThunderstorm Color = "#9575cd" // purple

	// Neutral fallbacks for absent or unrecognized codes. The dark
	// variant is light enough to stay readable on dark surfaces.
	ColorFallbackLight Color = "#757575"
	ColorFallbackDark  Color = "#bdbdbd"
)

// Classification is the resolved presentation for a weather code.
type Classification struct {
	Icon        Icon   `json:"icon"`
	Color       Color  `json:"color"`
	Description string `json:"description"`
}

// Options modify a classification lookup. The zero value means day,
// light theme, English descriptions.
type Options struct {
	// Night selects the night variant for the clear and partly-cloudy
	// icons. All other icons are night-invariant.
	Night bool
	// DarkTheme selects the neutral fallback color for absent or
	// unrecognized codes. Recognized codes keep their bucket color.
	DarkTheme bool
	// Locale selects the description language. The zero tag resolves
	// to English.
	Locale language.Tag
}

// rule maps an inclusive code interval to an icon variant and color.
// Rules are evaluated in order; the first match wins. Intervals are
// non-overlapping by construction, with single-code intervals standing
// in for the exact equality checks.
type rule struct {
	lo, hi Code
	icon   func(night bool) Icon
	color  Color
}

var rules = []rule{
	{0, 0, clearIcon, ColorClear},
	{1, 2, partlyCloudyIcon, ColorPartlyCloudy},
	{3, 3, fixedIcon(IconOvercast), ColorOvercast},
	{45, 45, fixedIcon(IconFog), ColorFog},
	{48, 48, fixedIcon(IconFog), ColorFog},
	{51, 57, fixedIcon(IconDrizzle), ColorDrizzle},
	{61, 67, fixedIcon(IconRain), ColorRain},
	{71, 77, fixedIcon(IconSnow), ColorSnow},
	{80, 82, fixedIcon(IconRain), ColorRainShowers},
	{85, 86, fixedIcon(IconSnow), ColorSnow},
	{95, 99, fixedIcon(IconThunderstorm), ColorThunderstorm},
}

// Classify resolves a weather code to its icon, color and localized
// description. A nil code and a code matching no rule both resolve to
// the clear icon variant, the theme-dependent neutral color and the
// locale's unknown sentinel. The function is pure and total: any
// integer input yields a defined result.
func Classify(code *Code, opts Options) Classification {
	if code == nil {
		return fallback(opts)
	}

	for _, r := range rules {
		if *code < r.lo || *code > r.hi {
			continue
		}
		return Classification{
			Icon:  r.icon(opts.Night),
			Color: r.color,
			// Descriptions are per exact code. Codes inside a rule
			// interval without a catalog entry (e.g. 52, 97) keep the
			// bucket icon and color but describe as unknown.
			Description: locale.Description(opts.Locale, int(*code)),
		}
	}

	return fallback(opts)
}

func fallback(opts Options) Classification {
	color := ColorFallbackLight
	if opts.DarkTheme {
		color = ColorFallbackDark
	}
	return Classification{
		Icon:        clearIcon(opts.Night),
		Color:       color,
		Description: locale.Unknown(opts.Locale),
	}
}
