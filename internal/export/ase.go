package export

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Adobe Swatch Exchange constants.
const (
	aseSignature      = "ASEF"
	aseVersionMajor   = 1
	aseVersionMinor   = 0
	aseBlockColour    = 0x0001
	aseColourModelRGB = "RGB "
	aseColourNormal   = 2
)

// ASE encodes the palette as an Adobe Swatch Exchange 1.0 file. Each swatch
// becomes one RGB colour entry named after its hex code.
func ASE(p colour.Palette) ([]byte, error) {
	var buf bytes.Buffer
	w := func(v any) {
		// bytes.Buffer writes cannot fail.
		_ = binary.Write(&buf, binary.BigEndian, v)
	}

	buf.WriteString(aseSignature)
	w(uint16(aseVersionMajor))
	w(uint16(aseVersionMinor))
	w(uint32(p.Len()))

	for _, s := range p.Colours {
		name := utf16.Encode([]rune(s.Hex))
		name = append(name, 0)

		// name length + name + model + 3 channels + colour type
		blockLen := 2 + len(name)*2 + 4 + 3*4 + 2

		w(uint16(aseBlockColour))
		w(uint32(blockLen))
		w(uint16(len(name)))
		w(name)
		buf.WriteString(aseColourModelRGB)
		w([3]float32{
			float32(s.RGB.R) / 255,
			float32(s.RGB.G) / 255,
			float32(s.RGB.B) / 255,
		})
		w(uint16(aseColourNormal))
	}

	return buf.Bytes(), nil
}
