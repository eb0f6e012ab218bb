package colors

// Chrome holds the derived window decoration colors for one focus state.
type Chrome struct {
	Border  string
	TitleBg string
	TitleFg string
}

// DeriveChrome generates focused and unfocused window chrome from a single
// accent color. The focused variant is saturated and bright; the unfocused
// variant is desaturated so stacked windows read as background.
func DeriveChrome(accent string) (focused, unfocused Chrome) {
	h, s, l := hexToHSL(accent)
	if h < 0 {
		// Invalid accent; fall back to the accent itself everywhere.
		c := Chrome{Border: accent, TitleBg: accent, TitleFg: "#ffffff"}
		return c, c
	}

	focusedBg := hslToHex(h, clamp01(s*1.3), clampRange(l, 0.35, 0.55))
	unfocusedBg := hslToHex(h, s*0.35, clampRange(l*0.8, 0.2, 0.35))

	focused = Chrome{
		Border:  hslToHex(h, clamp01(s*1.3), clampRange(l*1.2, 0.45, 0.65)),
		TitleBg: focusedBg,
		TitleFg: TextOn(focusedBg),
	}
	unfocused = Chrome{
		Border:  hslToHex(h, s*0.35, clampRange(l, 0.25, 0.4)),
		TitleBg: unfocusedBg,
		TitleFg: TextOn(unfocusedBg),
	}
	return focused, unfocused
}

// DeriveHeatmapPalette builds a 5-step intensity ramp from a base color.
// Level 0 stays a near-background neutral; levels 1-4 ramp the base's
// lightness from dim to vivid, GitHub-style.
func DeriveHeatmapPalette(base, background string) [5]string {
	h, s, l := hexToHSL(base)
	if h < 0 {
		return [5]string{background, base, base, base, base}
	}
	_ = l

	return [5]string{
		background,
		hslToHex(h, s, 0.16),
		hslToHex(h, s, 0.26),
		hslToHex(h, s, 0.38),
		hslToHex(h, s, 0.52),
	}
}

func clamp01(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hexToHSL converts hex color to HSL (hue 0-360, saturation 0-1, lightness 0-1).
// Returns -1, 0, 0 for invalid colors.
func hexToHSL(hexColor string) (float64, float64, float64) {
	r, g, b := hexToRGB(hexColor)
	if r < 0 {
		return -1, 0, 0
	}

	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := rf
	if gf > max {
		max = gf
	}
	if bf > max {
		max = bf
	}

	min := rf
	if gf < min {
		min = gf
	}
	if bf < min {
		min = bf
	}

	l := (max + min) / 2.0

	var h, s float64
	if max == min {
		h = 0
		s = 0 // Achromatic (gray)
	} else {
		d := max - min

		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		case bf:
			h = (rf-gf)/d + 4
		}
		h *= 60
	}

	return h, s, l
}

// hslToHex converts HSL to a hex color string.
func hslToHex(h, s, l float64) string {
	r, g, b := hslToRGB(h, s, l)
	return rgbToHex(int64(r*255.0), int64(g*255.0), int64(b*255.0))
}

// hslToRGB converts HSL to RGB (0-1 range).
func hslToRGB(h, s, l float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h/360.0+1.0/3.0)
	g := hueToRGB(p, q, h/360.0)
	b := hueToRGB(p, q, h/360.0-1.0/3.0)

	return r, g, b
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
