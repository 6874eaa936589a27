package conditions

// Code represents a WMO weather code
type Code int

// Weather code constants
const (
	ClearSky                   Code = 0
	MainlyClear                Code = 1
	PartlyCloudy               Code = 2
	Overcast                   Code = 3
	Fog                        Code = 45
	DepositingRimeFog          Code = 48
	DrizzleLight               Code = 51
	DrizzleModerate            Code = 53
	DrizzleDense               Code = 55
	FreezingDrizzleLight       Code = 56
	FreezingDrizzleDense       Code = 57
	RainSlight                 Code = 61
	RainModerate               Code = 63
	RainHeavy                  Code = 65
	FreezingRainLight          Code = 66
	FreezingRainHeavy          Code = 67
	SnowFallSlight             Code = 71
	SnowFallModerate           Code = 73
	SnowFallHeavy              Code = 75
	SnowGrains                 Code = 77
	RainShowersSlight          Code = 80
	RainShowersModerate        Code = 81
	RainShowersViolent         Code = 82
	SnowShowersSlight          Code = 85
	SnowShowersHeavy           Code = 86
	Thunderstorm               Code = 95
	ThunderstormWithSlightHail Code = 96
	ThunderstormWithHeavyHail  Code = 99
)
