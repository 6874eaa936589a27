package conditions

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func codePtr(c Code) *Code {
	return &c
}

func TestClassify_EnumeratedCodes(t *testing.T) {
	tests := []struct {
		code        Code
		icon        Icon
		color       Color
		description string
	}{
		{0, IconClearDay, ColorClear, "Clear sky"},
		{1, IconPartlyCloudyDay, ColorPartlyCloudy, "Mainly clear"},
		{2, IconPartlyCloudyDay, ColorPartlyCloudy, "Partly cloudy"},
		{3, IconOvercast, ColorOvercast, "Overcast"},
		{45, IconFog, ColorFog, "Fog"},
		{48, IconFog, ColorFog, "Depositing rime fog"},
		{51, IconDrizzle, ColorDrizzle, "Light drizzle"},
		{53, IconDrizzle, ColorDrizzle, "Moderate drizzle"},
		{55, IconDrizzle, ColorDrizzle, "Dense drizzle"},
		{56, IconDrizzle, ColorDrizzle, "Light freezing drizzle"},
		{57, IconDrizzle, ColorDrizzle, "Dense freezing drizzle"},
		{61, IconRain, ColorRain, "Slight rain"},
		{63, IconRain, ColorRain, "Moderate rain"},
		{65, IconRain, ColorRain, "Heavy rain"},
		{66, IconRain, ColorRain, "Light freezing rain"},
		{67, IconRain, ColorRain, "Heavy freezing rain"},
		{71, IconSnow, ColorSnow, "Slight snow"},
		{73, IconSnow, ColorSnow, "Moderate snow"},
		{75, IconSnow, ColorSnow, "Heavy snow"},
		{77, IconSnow, ColorSnow, "Snow grains"},
		{80, IconRain, ColorRainShowers, "Slight rain showers"},
		{81, IconRain, ColorRainShowers, "Moderate rain showers"},
		{82, IconRain, ColorRainShowers, "Violent rain showers"},
		{85, IconSnow, ColorSnow, "Slight snow showers"},
		{86, IconSnow, ColorSnow, "Heavy snow showers"},
		{95, IconThunderstorm, ColorThunderstorm, "Thunderstorm"},
		{96, IconThunderstorm, ColorThunderstorm, "Thunderstorm with slight hail"},
		{99, IconThunderstorm, ColorThunderstorm, "Thunderstorm with heavy hail"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			result := Classify(codePtr(tt.code), Options{})
			if result.Icon != tt.icon {
				t.Errorf("Classify(%d).Icon = %s, want %s", tt.code, result.Icon, tt.icon)
			}
			if result.Color != tt.color {
				t.Errorf("Classify(%d).Color = %s, want %s", tt.code, result.Color, tt.color)
			}
			if result.Description != tt.description {
				t.Errorf("Classify(%d).Description = %q, want %q", tt.code, result.Description, tt.description)
			}
		})
	}
}

func TestClassify_NightVariants(t *testing.T) {
	tests := []struct {
		name      string
		code      Code
		dayIcon   Icon
		nightIcon Icon
	}{
		{"clear", 0, IconClearDay, IconClearNight},
		{"mainly clear", 1, IconPartlyCloudyDay, IconPartlyCloudyNight},
		{"partly cloudy", 2, IconPartlyCloudyDay, IconPartlyCloudyNight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := Classify(codePtr(tt.code), Options{Night: false})
			night := Classify(codePtr(tt.code), Options{Night: true})

			if day.Icon != tt.dayIcon {
				t.Errorf("day icon = %s, want %s", day.Icon, tt.dayIcon)
			}
			if night.Icon != tt.nightIcon {
				t.Errorf("night icon = %s, want %s", night.Icon, tt.nightIcon)
			}

			// Only the icon may vary with the night flag
			if day.Color != night.Color {
				t.Errorf("color varies with night flag: %s vs %s", day.Color, night.Color)
			}
			if day.Description != night.Description {
				t.Errorf("description varies with night flag: %q vs %q", day.Description, night.Description)
			}
		})
	}
}

func TestClassify_NightInvariantCategories(t *testing.T) {
	for _, code := range []Code{3, 45, 48, 55, 61, 71, 80, 85, 95} {
		day := Classify(codePtr(code), Options{Night: false})
		night := Classify(codePtr(code), Options{Night: true})
		if !reflect.DeepEqual(day, night) {
			t.Errorf("Classify(%d) varies with night flag: %+v vs %+v", code, day, night)
		}
	}
}

func TestClassify_Fallback(t *testing.T) {
	tests := []struct {
		name string
		code *Code
	}{
		{"absent", nil},
		{"negative", codePtr(-1)},
		{"gap below fog", codePtr(4)},
		{"gap between fog and drizzle", codePtr(46)},
		{"above table", codePtr(100)},
		{"far out of range", codePtr(9999)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.code, Options{})
			if result.Icon != IconClearDay {
				t.Errorf("Icon = %s, want %s", result.Icon, IconClearDay)
			}
			if result.Color != ColorFallbackLight {
				t.Errorf("Color = %s, want %s", result.Color, ColorFallbackLight)
			}
			if result.Description != "Unknown" {
				t.Errorf("Description = %q, want %q", result.Description, "Unknown")
			}

			night := Classify(tt.code, Options{Night: true})
			if night.Icon != IconClearNight {
				t.Errorf("night Icon = %s, want %s", night.Icon, IconClearNight)
			}

			dark := Classify(tt.code, Options{DarkTheme: true})
			if dark.Color != ColorFallbackDark {
				t.Errorf("dark Color = %s, want %s", dark.Color, ColorFallbackDark)
			}
		})
	}
}

// Codes inside a rule interval but absent from the description tables
// keep the bucket icon and color while describing as unknown.
func TestClassify_InRangeUnmappedCodes(t *testing.T) {
	tests := []struct {
		code  Code
		icon  Icon
		color Color
	}{
		{52, IconDrizzle, ColorDrizzle},
		{54, IconDrizzle, ColorDrizzle},
		{62, IconRain, ColorRain},
		{72, IconSnow, ColorSnow},
		{97, IconThunderstorm, ColorThunderstorm},
		{98, IconThunderstorm, ColorThunderstorm},
	}

	for _, tt := range tests {
		result := Classify(codePtr(tt.code), Options{})
		if result.Icon != tt.icon || result.Color != tt.color {
			t.Errorf("Classify(%d) = {%s %s}, want {%s %s}",
				tt.code, result.Icon, result.Color, tt.icon, tt.color)
		}
		if result.Description != "Unknown" {
			t.Errorf("Classify(%d).Description = %q, want %q", tt.code, result.Description, "Unknown")
		}
	}
}

func TestClassify_DescriptionDistinctness(t *testing.T) {
	tests := []struct {
		name string
		a, b Code
	}{
		{"mainly clear vs partly cloudy", 1, 2},
		{"dense vs freezing drizzle", 55, 56},
		{"heavy vs freezing rain", 65, 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Classify(codePtr(tt.a), Options{})
			b := Classify(codePtr(tt.b), Options{})

			if a.Icon != b.Icon {
				t.Errorf("icons differ: %s vs %s", a.Icon, b.Icon)
			}
			if a.Color != b.Color {
				t.Errorf("colors differ: %s vs %s", a.Color, b.Color)
			}
			if a.Description == b.Description {
				t.Errorf("descriptions should differ, both %q", a.Description)
			}
		})
	}
}

func TestClassify_CzechDescriptions(t *testing.T) {
	tests := []struct {
		code        Code
		description string
	}{
		{0, "Jasno"},
		{2, "Polojasno"},
		{61, "Slabý déšť"},
		{95, "Bouřka"},
	}

	for _, tt := range tests {
		result := Classify(codePtr(tt.code), Options{Locale: language.Czech})
		if result.Description != tt.description {
			t.Errorf("Classify(%d, cs).Description = %q, want %q", tt.code, result.Description, tt.description)
		}
	}

	// Czech unknown sentinel for the fallback path
	result := Classify(nil, Options{Locale: language.Czech})
	if result.Description != "Neznámé" {
		t.Errorf("Classify(nil, cs).Description = %q, want %q", result.Description, "Neznámé")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	opts := Options{Night: true, DarkTheme: true, Locale: language.Czech}
	for _, code := range []*Code{nil, codePtr(0), codePtr(56), codePtr(9999)} {
		first := Classify(code, opts)
		second := Classify(code, opts)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify not deterministic: %+v vs %+v", first, second)
		}
	}
}

func TestIcon_String(t *testing.T) {
	tests := []struct {
		icon     Icon
		expected string
	}{
		{IconClearDay, "clear-day"},
		{IconClearNight, "clear-night"},
		{IconPartlyCloudyDay, "partly-cloudy-day"},
		{IconPartlyCloudyNight, "partly-cloudy-night"},
		{IconOvercast, "overcast"},
		{IconFog, "fog"},
		{IconDrizzle, "drizzle"},
		{IconRain, "rain"},
		{IconSnow, "snow"},
		{IconThunderstorm, "thunderstorm"},
		{Icon(42), "unknown (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.icon.String(); got != tt.expected {
				t.Errorf("Icon(%d).String() = %q, want %q", tt.icon, got, tt.expected)
			}
		})
	}
}

func TestIcon_MarshalJSON(t *testing.T) {
	data, err := IconPartlyCloudyNight.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if string(data) != `"partly-cloudy-night"` {
		t.Errorf("MarshalJSON = %s, want %q", data, `"partly-cloudy-night"`)
	}
}
