// Package illustration renders deterministic placeholder cards for paper
// key points: a colored 512x512 tile with the key point word-wrapped in the
// center, returned as a base64 PNG data URI.
package illustration

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"paperbuddy/internal/domain"
)

const (
	cardSize     = 512
	textMaxWidth = 452
	lineHeight   = 24
	watermark    = "PaperBuddy"

	// MaxImages caps how many cards one request may render.
	MaxImages = 5
)

type palette struct {
	bg color.RGBA
	fg color.RGBA
}

var palettes = map[domain.IllustrationStyle][]palette{
	domain.StylePastel: {
		{rgb(0xFFB3BA), rgb(0x000000)},
		{rgb(0xBAFFC9), rgb(0x000000)},
		{rgb(0xBAE1FF), rgb(0x000000)},
		{rgb(0xFFFFBA), rgb(0x000000)},
		{rgb(0xFFD9BA), rgb(0x000000)},
	},
	domain.StyleColorful: {
		{rgb(0xFF6B6B), rgb(0xFFFFFF)},
		{rgb(0x4ECDC4), rgb(0xFFFFFF)},
		{rgb(0x45B7D1), rgb(0xFFFFFF)},
		{rgb(0xFFA07A), rgb(0xFFFFFF)},
		{rgb(0x98D8C8), rgb(0xFFFFFF)},
	},
	domain.StyleSimple: {
		{rgb(0xE8E8E8), rgb(0x333333)},
		{rgb(0xD0D0D0), rgb(0x333333)},
		{rgb(0xC0C0C0), rgb(0x333333)},
	},
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// Generator renders placeholder illustration cards.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders one card per key point, at most MaxImages. Unknown
// styles use the pastel palette. Rendering is deterministic: the same
// inputs always produce identical cards.
func (g *Generator) Generate(keyPoints []string, style domain.IllustrationStyle) []domain.Illustration {
	if len(keyPoints) > MaxImages {
		keyPoints = keyPoints[:MaxImages]
	}
	cards := make([]domain.Illustration, 0, len(keyPoints))
	for i, point := range keyPoints {
		cards = append(cards, g.render(point, style, i))
	}
	return cards
}

func (g *Generator) render(point string, style domain.IllustrationStyle, idx int) domain.Illustration {
	pal, ok := palettes[style]
	if !ok {
		pal = palettes[domain.StylePastel]
	}
	p := pal[idx%len(pal)]

	img := image.NewRGBA(image.Rect(0, 0, cardSize, cardSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: p.bg}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lines := wrapText(point, face, textMaxWidth)

	y := (cardSize - len(lines)*lineHeight) / 2
	for _, line := range lines {
		w := font.MeasureString(face, line).Ceil()
		drawString(img, face, line, (cardSize-w)/2, y, p.fg)
		y += lineHeight
	}

	drawString(img, face, watermark, 10, cardSize-18, p.fg)

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	return domain.Illustration{
		URL:         uri,
		Description: point,
		KeyPoint:    point,
		Backend:     "placeholder",
	}
}

func drawString(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: c},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// wrapText greedily wraps words so each rendered line fits maxWidth pixels.
func wrapText(s string, face font.Face, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)
	return lines
}
