package main

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontCache hands out font faces keyed by pixel size. The HUD recomputes
// button font sizes on every resize, so faces are built lazily and kept.
// If fonts/Roboto-Regular.ttf is missing or unreadable the cache falls
// back to basicfont.Face7x13 at every size.
type FontCache struct {
	source *sfnt.Font
	faces  map[int]font.Face
}

func NewFontCache() *FontCache {
	fc := &FontCache{faces: make(map[int]font.Face)}

	data, err := os.ReadFile(FontFile)
	if err != nil {
		log.Println("NewFontCache:", FontFile, "not found, using basic font:", err)
		return fc
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Println("NewFontCache: parse error, using basic font:", err)
		return fc
	}
	fc.source = f
	return fc
}

// Face returns a face for the given pixel size, rounded to whole pixels.
func (fc *FontCache) Face(size float64) font.Face {
	px := int(size + 0.5)
	if px < 1 {
		px = 1
	}
	if face, ok := fc.faces[px]; ok {
		return face
	}

	face := font.Face(basicfont.Face7x13)
	if fc.source != nil {
		f, err := opentype.NewFace(fc.source, &opentype.FaceOptions{
			Size:    float64(px),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.Println("FontCache: new face error, using basic font:", err)
		} else {
			face = f
		}
	}
	fc.faces[px] = face
	return face
}
