package colour

// ColourName is one of a fixed set of coarse colour names.
type ColourName string

const (
	NameBlack   ColourName = "Black"
	NameWhite   ColourName = "White"
	NameGray    ColourName = "Gray"
	NameRed     ColourName = "Red"
	NameOrange  ColourName = "Orange"
	NameYellow  ColourName = "Yellow"
	NameGreen   ColourName = "Green"
	NameCyan    ColourName = "Cyan"
	NameBlue    ColourName = "Blue"
	NamePurple  ColourName = "Purple"
	NameMagenta ColourName = "Magenta"
)

// ColourNames returns every name Name can produce.
func ColourNames() []ColourName {
	return []ColourName{
		NameBlack, NameWhite, NameGray,
		NameRed, NameOrange, NameYellow, NameGreen,
		NameCyan, NameBlue, NamePurple, NameMagenta,
	}
}

// Name maps an RGB colour to a coarse name based on its rounded HSL.
func Name(rgb RGB) ColourName {
	return NameHSL(RGBToHSL(rgb))
}

// NameHSL applies the naming rules to an HSL triple. Lightness and
// saturation thresholds are checked before hue.
func NameHSL(hsl HSL) ColourName {
	switch {
	case hsl.L < 10:
		return NameBlack
	case hsl.L > 90 && hsl.S < 10:
		return NameWhite
	case hsl.S < 10:
		return NameGray
	}
	return HueName(float64(hsl.H))
}

// HueName names a chromatic hue in degrees. Hues outside [0,360) are
// wrapped first, so every input maps to a name.
func HueName(h float64) ColourName {
	h = wrapHue(h)

	switch {
	case h < 15 || h >= 345:
		return NameRed
	case h < 45:
		return NameOrange
	case h < 75:
		return NameYellow
	case h < 150:
		return NameGreen
	case h < 200:
		return NameCyan
	case h < 260:
		return NameBlue
	case h < 290:
		return NamePurple
	default:
		return NameMagenta
	}
}

func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
