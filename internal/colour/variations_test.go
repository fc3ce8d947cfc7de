package colour

import "testing"

func TestVariations(t *testing.T) {
	got := Variations(RGB{R: 100, G: 100, B: 100})

	wantLabels := []string{"-90%", "-70%", "-50%", "-30%", "Base", "+30%", "+50%", "+70%", "+90%"}
	wantHex := []string{"#0a0a0a", "#1e1e1e", "#323232", "#464646", "#646464", "#828282", "#969696", "#aaaaaa", "#bebebe"}

	if len(got) != len(wantLabels) {
		t.Fatalf("len = %d, want %d", len(got), len(wantLabels))
	}
	for i, v := range got {
		if v.Label != wantLabels[i] {
			t.Errorf("[%d] label = %q, want %q", i, v.Label, wantLabels[i])
		}
		if v.Hex != wantHex[i] {
			t.Errorf("[%d] hex = %q, want %q", i, v.Hex, wantHex[i])
		}
	}
	if got[4].Hex != RGBToHex(100, 100, 100) {
		t.Errorf("Base = %q, want %q", got[4].Hex, RGBToHex(100, 100, 100))
	}
}

func TestAdjustBrightnessClamps(t *testing.T) {
	tests := []struct {
		name   string
		rgb    RGB
		factor float64
		want   RGB
	}{
		{name: "caps at 255", rgb: RGB{R: 200, G: 100}, factor: 1.9, want: RGB{R: 255, G: 190}},
		{name: "floors", rgb: RGB{R: 7, G: 9, B: 255}, factor: 0.5, want: RGB{R: 3, G: 4, B: 127}},
		{name: "identity", rgb: RGB{R: 1, G: 2, B: 3}, factor: 1, want: RGB{R: 1, G: 2, B: 3}},
		{name: "white stays white", rgb: RGB{R: 255, G: 255, B: 255}, factor: 1.7, want: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustBrightness(tt.rgb, tt.factor); got != tt.want {
				t.Errorf("AdjustBrightness(%+v, %v) = %+v, want %+v", tt.rgb, tt.factor, got, tt.want)
			}
		})
	}
}
