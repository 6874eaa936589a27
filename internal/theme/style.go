// Package theme holds the fixed visual styles for the presentation
// shell and the ambient theme selection derived from current weather.
package theme

// Style describes the shell's visual treatment for one theme. Values
// are CSS color strings consumed by the rendering frontend.
type Style struct {
	// Overlay is the backdrop tint behind the shell, opacity included.
	Overlay string `json:"overlay"`
	// Surface is the shell's own background.
	Surface string `json:"surface"`
	// Text is the primary text color.
	Text string `json:"text"`
	// TextMuted is the secondary text color, used for subtitles.
	TextMuted string `json:"textMuted"`
}

var (
	// Light is the default shell style.
	Light = Style{
		Overlay:   "rgba(15, 23, 42, 0.45)",
		Surface:   "#ffffff",
		Text:      "#1a2530",
		TextMuted: "#506070",
	}

	// Dark is the shell style for dark surroundings.
	Dark = Style{
		Overlay:   "rgba(0, 0, 0, 0.65)",
		Surface:   "#1a1a2e",
		Text:      "#eeeeee",
		TextMuted: "#8888a0",
	}
)

// ForDark returns the style matching the theme flag.
func ForDark(dark bool) Style {
	if dark {
		return Dark
	}
	return Light
}
