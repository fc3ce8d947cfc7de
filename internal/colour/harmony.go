package colour

// HarmonyKind names a fixed relationship between hues.
type HarmonyKind string

const (
	HarmonyComplementary      HarmonyKind = "Complementary"
	HarmonyTriadic            HarmonyKind = "Triadic"
	HarmonyAnalogous          HarmonyKind = "Analogous"
	HarmonySplitComplementary HarmonyKind = "Split Complementary"
)

// HarmonyKinds returns the four kinds in display order.
func HarmonyKinds() []HarmonyKind {
	return []HarmonyKind{
		HarmonyComplementary,
		HarmonyTriadic,
		HarmonyAnalogous,
		HarmonySplitComplementary,
	}
}

// HarmonySet maps each harmony kind to its colours as hex strings.
type HarmonySet map[HarmonyKind][]string

// Harmonies builds all four harmony groups for a reference colour.
func Harmonies(ref HSL) HarmonySet {
	return HarmonySet{
		HarmonyComplementary:      Complementary(ref),
		HarmonyTriadic:            Triadic(ref),
		HarmonyAnalogous:          Analogous(ref),
		HarmonySplitComplementary: SplitComplementary(ref),
	}
}

// Complementary returns the reference and the hue opposite it.
func Complementary(ref HSL) []string {
	return rotateHue(ref, 0, 180)
}

// Triadic returns three hues spaced 120 degrees apart.
func Triadic(ref HSL) []string {
	return rotateHue(ref, 0, 120, 240)
}

// Analogous returns the reference flanked by its 30 degree neighbours.
func Analogous(ref HSL) []string {
	return rotateHue(ref, -30, 0, 30)
}

// SplitComplementary returns the reference and the two neighbours of its
// complement.
func SplitComplementary(ref HSL) []string {
	return rotateHue(ref, 0, 150, 210)
}

// rotateHue keeps S and L and offsets the hue by each angle, modulo 360.
func rotateHue(ref HSL, offsets ...int) []string {
	out := make([]string, len(offsets))
	for i, off := range offsets {
		h := ((ref.H+off)%360 + 360) % 360
		out[i] = HSLToRGB(HSL{H: h, S: ref.S, L: ref.L}).Hex()
	}
	return out
}
