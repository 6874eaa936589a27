package conditions

import "fmt"

// Icon is an abstract bucket of visually similar weather conditions,
// independent of display language.
type Icon int

const (
	IconClearDay Icon = iota
	IconClearNight
	IconPartlyCloudyDay
	IconPartlyCloudyNight
	IconOvercast
	IconFog
	IconDrizzle
	IconRain
	IconSnow
	IconThunderstorm
)

var iconSlugs = map[Icon]string{
	IconClearDay:          "clear-day",
	IconClearNight:        "clear-night",
	IconPartlyCloudyDay:   "partly-cloudy-day",
	IconPartlyCloudyNight: "partly-cloudy-night",
	IconOvercast:          "overcast",
	IconFog:               "fog",
	IconDrizzle:           "drizzle",
	IconRain:              "rain",
	IconSnow:              "snow",
	IconThunderstorm:      "thunderstorm",
}

func (i Icon) String() string {
	if slug, ok := iconSlugs[i]; ok {
		return slug
	}
	return fmt.Sprintf("unknown (%d)", int(i))
}

// MarshalJSON encodes the icon as its kebab-case slug, which is what
// icon-rendering frontends key on.
func (i Icon) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", i.String())), nil
}

// clearIcon picks the day or night clear variant.
func clearIcon(night bool) Icon {
	if night {
		return IconClearNight
	}
	return IconClearDay
}

// partlyCloudyIcon picks the day or night partly-cloudy variant.
func partlyCloudyIcon(night bool) Icon {
	if night {
		return IconPartlyCloudyNight
	}
	return IconPartlyCloudyDay
}

// fixedIcon wraps a night-invariant icon in the variant-selector shape.
func fixedIcon(icon Icon) func(bool) Icon {
	return func(bool) Icon { return icon }
}
