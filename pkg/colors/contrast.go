package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Luminance calculates the relative luminance of a color per WCAG formula.
// Returns a value between 0 (black) and 1 (white).
func Luminance(hexColor string) float64 {
	r, g, b := hexToRGB(hexColor)
	if r < 0 {
		return 0 // Invalid color
	}

	rs := gammaSRGB(float64(r) / 255.0)
	gs := gammaSRGB(float64(g) / 255.0)
	bs := gammaSRGB(float64(b) / 255.0)

	return 0.2126*rs + 0.7152*gs + 0.0722*bs
}

// gammaSRGB applies sRGB gamma correction
func gammaSRGB(val float64) float64 {
	if val <= 0.03928 {
		return val / 12.92
	}
	return math.Pow((val+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two colors.
// Returns a value between 1 (no contrast) and 21 (maximum contrast).
func ContrastRatio(fg, bg string) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLight returns true if the color is closer to white than black.
func IsLight(hexColor string) bool {
	return Luminance(hexColor) > 0.5
}

// TextOn determines the best text color (white or black) for a background.
// Uses WCAG AA large-text threshold (3:1) to prefer white on colored
// backgrounds, falling back to black for truly light backgrounds.
func TextOn(bgColor string) string {
	if ContrastRatio("#ffffff", bgColor) >= 3.0 {
		return "#ffffff"
	}
	if ContrastRatio("#000000", bgColor) >= 3.0 {
		return "#000000"
	}
	if IsLight(bgColor) {
		return "#000000"
	}
	return "#ffffff"
}

// hexToRGB converts hex color to RGB values (0-255).
// Returns -1, -1, -1 for invalid colors.
func hexToRGB(hexColor string) (int64, int64, int64) {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return -1, -1, -1
	}

	r, errR := strconv.ParseInt(hex[0:2], 16, 64)
	g, errG := strconv.ParseInt(hex[2:4], 16, 64)
	b, errB := strconv.ParseInt(hex[4:6], 16, 64)

	if errR != nil || errG != nil || errB != nil {
		return -1, -1, -1
	}

	return r, g, b
}

// rgbToHex converts RGB values to a hex color string, clamping to 0-255.
func rgbToHex(r, g, b int64) string {
	clamp := func(v int64) int64 {
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}
