package docsite

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 85

	socialCardWidth  = 1200
	socialCardHeight = 630
	socialCardScale  = 5 // the card is drawn at 1/5 size and scaled up
)

// OptimizeImage downscales PNG and JPEG images wider than maxImageWidth,
// keeping their format. Other files are returned unchanged.
func OptimizeImage(name string, data []byte) ([]byte, bool, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return data, false, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= maxImageWidth {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	newH := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if ext == ".png" {
		err = png.Encode(&buf, dst)
	} else {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}

var (
	cardBackground = color.RGBA{0x1b, 0x1b, 0x1d, 0xff}
	cardAccent     = color.RGBA{0x25, 0xc2, 0xa0, 0xff}
	cardText       = color.RGBA{0xe3, 0xe3, 0xe3, 0xff}
)

// SocialCard draws a 1200x630 Open Graph image with the site title and
// tagline. ext selects the encoding: ".png" or JPEG for anything else.
func SocialCard(title, tagline, ext string) ([]byte, error) {
	w, h := socialCardWidth/socialCardScale, socialCardHeight/socialCardScale
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)
	draw.Draw(small, image.Rect(0, h-6, w, h), image.NewUniform(cardAccent), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	lines := wrapText(face, title, w-16)
	lines = append(lines, "")
	lines = append(lines, wrapText(face, tagline, w-16)...)

	y := (h-len(lines)*lineHeight)/2 + face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		src := cardText
		if i == 0 {
			src = cardAccent
		}
		d := &font.Drawer{Dst: small, Src: image.NewUniform(src), Face: face}
		x := (w - d.MeasureString(line).Ceil()) / 2
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
		y += lineHeight
	}

	// Nearest neighbour keeps the bitmap glyph edges sharp.
	card := image.NewRGBA(image.Rect(0, 0, socialCardWidth, socialCardHeight))
	draw.NearestNeighbor.Scale(card, card.Bounds(), small, small.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	var err error
	if strings.EqualFold(ext, ".png") {
		err = png.Encode(&buf, card)
	} else {
		err = jpeg.Encode(&buf, card, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("docsite: encode social card: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText breaks s into lines no wider than maxWidth pixels.
func wrapText(face font.Face, s string, maxWidth int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && font.MeasureString(face, next).Ceil() > maxWidth {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
