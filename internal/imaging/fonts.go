package imaging

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// dejaVuPaths lists the usual install locations for DejaVu Sans, the
// preferred label font. The first readable file wins.
var dejaVuPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/local/share/fonts/DejaVuSans.ttf",
	"/Library/Fonts/DejaVuSans.ttf",
	"C:\\Windows\\Fonts\\DejaVuSans.ttf",
}

var (
	labelFontOnce sync.Once
	labelFontData *opentype.Font
)

// labelFont returns the parsed label font, preferring DejaVu Sans from the
// system and falling back to the embedded Go Regular. The parse happens once
// per process.
func labelFont() *opentype.Font {
	labelFontOnce.Do(func() {
		for _, path := range dejaVuPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if fnt, err := opentype.Parse(data); err == nil {
				labelFontData = fnt
				return
			}
		}
		if fnt, err := opentype.Parse(goregular.TTF); err == nil {
			labelFontData = fnt
		}
	})
	return labelFontData
}

// labelFace builds a face at the given pixel size. Font loading must never
// fail the watermark operation, so in the degenerate case where no scalable
// font is usable the fixed 7x13 basicfont is returned.
func labelFace(size int) font.Face {
	fnt := labelFont()
	if fnt == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
