package theme

import "skyglance/internal/conditions"

// Ambient names a full-screen mood with a three-stop background
// gradient and an optional particle effect.
type Ambient struct {
	Name     string   `json:"theme"`
	Gradient []string `json:"gradient"`
	Effect   string   `json:"effect,omitempty"`
}

// Ambient theme names.
const (
	AmbientStorm       = "storm"
	AmbientRain        = "rain"
	AmbientSnow        = "snow"
	AmbientSunrise     = "sunrise"
	AmbientSunset      = "sunset"
	AmbientCloudyNight = "cloudy_night"
	AmbientClearNight  = "clear_night"
	AmbientCloudy      = "cloudy"
	AmbientSunny       = "sunny"
)

// Select picks the ambient theme for a weather code and local hour.
// Precipitation outranks time of day; time of day outranks cloudiness.
// cloudCover (percent) is optional and only disambiguates night skies.
// Like the classifier, Select is pure and total.
func Select(code conditions.Code, hour int, cloudCover *int) Ambient {
	night := hour < 6 || hour > 20
	sunrise := hour >= 5 && hour <= 7
	sunset := hour >= 18 && hour <= 20

	if code >= 95 && code <= 99 {
		return Ambient{
			Name:     AmbientStorm,
			Gradient: []string{"#1a0a2e", "#16213e", "#0f0f0f"},
			Effect:   "lightning",
		}
	}

	if (code >= 51 && code <= 67) || (code >= 80 && code <= 82) {
		return Ambient{
			Name:     AmbientRain,
			Gradient: []string{"#4a6fa5", "#6b8cae", "#8fa8c2"},
		}
	}

	if (code >= 71 && code <= 77) || (code >= 85 && code <= 86) {
		return Ambient{
			Name:     AmbientSnow,
			Gradient: []string{"#e8f4f8", "#d4e8ed", "#b8d4e3"},
		}
	}

	if sunrise {
		return Ambient{
			Name:     AmbientSunrise,
			Gradient: []string{"#ff9a9e", "#fecfef", "#ffd89b"},
		}
	}

	if sunset {
		return Ambient{
			Name:     AmbientSunset,
			Gradient: []string{"#fa709a", "#fee140", "#642b73"},
		}
	}

	if night {
		if cloudCover != nil && *cloudCover > 50 {
			return Ambient{
				Name:     AmbientCloudyNight,
				Gradient: []string{"#2c3e50", "#34495e", "#1a1a2e"},
			}
		}
		return Ambient{
			Name:     AmbientClearNight,
			Gradient: []string{"#0f0c29", "#302b63", "#24243e"},
			Effect:   "stars",
		}
	}

	switch code {
	case conditions.PartlyCloudy, conditions.Overcast, conditions.Fog, conditions.DepositingRimeFog:
		return Ambient{
			Name:     AmbientCloudy,
			Gradient: []string{"#8e9eab", "#c5d5e4", "#eef2f3"},
		}
	}

	return Ambient{
		Name:     AmbientSunny,
		Gradient: []string{"#f6d365", "#fda085", "#ffecd2"},
	}
}
