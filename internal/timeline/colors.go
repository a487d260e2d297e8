package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"wiser_schedule"
)

// Color is an 8-bit RGB triple for slot rendering.
type Color struct {
	R, G, B int
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// fallback when a configured colour cannot be parsed.
var colorUnknown = Color{100, 100, 100}

// heatingOffColor renders the -20 "off" sentinel.
var heatingOffColor = Color{138, 138, 138}

// ColorConfig carries the two configured OnOff state colours.
type ColorConfig struct {
	OnColor  Color
	OffColor Color
}

// DefaultColorConfig mirrors the usual dashboard state colours.
var DefaultColorConfig = ColorConfig{
	OnColor:  Color{255, 193, 7},
	OffColor: Color{68, 115, 158},
}

// ParseHexColor converts "#RRGGBB" to a Color, falling back to a neutral
// grey for anything malformed.
func ParseHexColor(hex string) Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return colorUnknown
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorUnknown
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// MapColor maps a setpoint to its display colour for the schedule type.
func MapColor(scheduleType, setpoint string, cfg ColorConfig) Color {
	switch scheduleType {
	case wiser_schedule.TypeOnOff:
		if setpoint == "On" {
			return cfg.OnColor
		}
		return cfg.OffColor
	case wiser_schedule.TypeLighting, wiser_schedule.TypeShutters:
		pct, err := strconv.Atoi(setpoint)
		if err != nil {
			return colorUnknown
		}
		return greyToYellow(pct)
	case wiser_schedule.TypeHeating:
		v, err := strconv.ParseFloat(setpoint, 64)
		if err != nil {
			return colorUnknown
		}
		return heatingColor(v)
	}
	return colorUnknown
}

// greyToYellow ramps a 0-100 level from dark grey to bright yellow, red and
// green channels scaled independently, blue fixed at zero.
func greyToYellow(percent int) Color {
	if percent == 0 {
		return Color{50, 50, 50}
	}
	const (
		rMax = 250
		gMax = 200
		min  = 50
	)
	r := min + (rMax-min)*percent/100
	g := min + (gMax-min)*percent/100
	return Color{R: clamp8(r), G: clamp8(g), B: 0}
}

// heatingColor ramps from hot red at 5°C to cool yellow at 25°C by scaling
// the green channel; -20 is the off sentinel.
func heatingColor(setpoint float64) Color {
	if setpoint == -20 {
		return heatingOffColor
	}
	const (
		minC = 5.0
		maxC = 25.0
	)
	f := (setpoint - minC) / (maxC - minC)
	return Color{R: 255, G: clamp8(int(255 * (1 - f))), B: 0}
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// SetpointLabel is the display text for a slot's value: the value plus the
// type's unit, except the heating off sentinel which reads "Off".
func SetpointLabel(scheduleType, setpoint string) string {
	if setpoint == "Unknown" {
		return setpoint
	}
	if scheduleType == wiser_schedule.TypeHeating {
		if v, err := strconv.ParseFloat(setpoint, 64); err == nil && v == -20 {
			return "Off"
		}
	}
	return setpoint + wiser_schedule.SetpointUnit(scheduleType)
}
