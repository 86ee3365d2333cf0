package visual

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas size of locally rendered visuals.
const (
	canvasWidth   = 800
	canvasHeight  = 400
	maxTitleRunes = 32
)

// palette is the look of a locally rendered visual for a family of categories.
type palette struct {
	name     string
	keywords []string
	tagline  string
	fill     func(x, y int) color.RGBA
	text     color.RGBA
	shadow   color.RGBA
}

func lerp(a, b, num, den int) uint8 {
	return uint8(a + (b-a)*num/den)
}

var palettes = []palette{
	{
		name:     "skincare",
		keywords: []string{"skincare", "beauty"},
		tagline:  "SKINCARE COLLECTION",
		fill: func(_, y int) color.RGBA {
			g := lerp(248, 218, y, canvasHeight)
			return color.RGBA{g, g - 5, g - 10, 0xff}
		},
		text:   color.RGBA{0x2c, 0x3e, 0x50, 0xff},
		shadow: color.RGBA{0xff, 0xff, 0xff, 0xff},
	},
	{
		name:     "fashion",
		keywords: []string{"fashion", "apparel"},
		tagline:  "FASHION COLLECTION",
		fill: func(_, y int) color.RGBA {
			s := lerp(26, 66, y, canvasHeight)
			return color.RGBA{s, s, s, 0xff}
		},
		text:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		shadow: color.RGBA{0x00, 0x00, 0x00, 0xff},
	},
	{
		name:     "fitness",
		keywords: []string{"fitness", "health"},
		tagline:  "FITNESS & WELLNESS",
		fill: func(_, y int) color.RGBA {
			return color.RGBA{lerp(255, 205, y, canvasHeight), lerp(107, 137, y, canvasHeight), lerp(53, 33, y, canvasHeight), 0xff}
		},
		text:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		shadow: color.RGBA{0x00, 0x00, 0x00, 0xff},
	},
	{
		name:     "tech",
		keywords: []string{"technology", "tech"},
		tagline:  "INNOVATIVE TECHNOLOGY",
		fill: func(x, y int) color.RGBA {
			return color.RGBA{
				lerp(13, 43, x, canvasWidth),
				lerp(20, 60, y, canvasHeight),
				lerp(33, 93, x+y, canvasWidth+canvasHeight),
				0xff,
			}
		},
		text:   color.RGBA{0x00, 0xd4, 0xff, 0xff},
		shadow: color.RGBA{0x00, 0x00, 0x00, 0xff},
	},
	{
		name:     "food",
		keywords: []string{"food", "beverage"},
		tagline:  "DELICIOUS & FRESH",
		fill: func(_, y int) color.RGBA {
			return color.RGBA{lerp(255, 235, y, canvasHeight), lerp(228, 188, y, canvasHeight), lerp(181, 121, y, canvasHeight), 0xff}
		},
		text:   color.RGBA{0x8b, 0x45, 0x13, 0xff},
		shadow: color.RGBA{0xff, 0xff, 0xff, 0xff},
	},
}

var genericPalette = palette{
	name: "generic",
	fill: func(x, y int) color.RGBA {
		return color.RGBA{lerp(74, 174, x, canvasWidth), lerp(144, 194, y, canvasHeight), lerp(226, 176, x, canvasWidth), 0xff}
	},
	text:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	shadow: color.RGBA{0x00, 0x00, 0x00, 0xff},
}

func paletteFor(category string) palette {
	c := strings.ToLower(category)
	for _, p := range palettes {
		for _, kw := range p.keywords {
			if strings.Contains(c, kw) {
				return p
			}
		}
	}
	return genericPalette
}

func (p palette) taglineFor(category string) string {
	if p.tagline != "" {
		return p.tagline
	}
	if c := strings.TrimSpace(category); c != "" {
		return strings.ToUpper(c)
	}
	return "BRAND COLLECTION"
}

// rendered is a locally drawn placeholder image.
type rendered struct {
	PNG   []byte
	Model string
}

// renderFunc draws a branded placeholder for a brand and category.
type renderFunc func(name, category string) (rendered, error)

// renderLocal draws a gradient banner with the brand name and a category tagline.
func renderLocal(name, category string) (rendered, error) {
	p := paletteFor(category)
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	for y := 0; y < canvasHeight; y++ {
		for x := 0; x < canvasWidth; x++ {
			img.SetRGBA(x, y, p.fill(x, y))
		}
	}

	title := brandName(name)
	if utf8.RuneCountInString(title) > maxTitleRunes {
		title = string([]rune(title)[:maxTitleRunes])
	}
	drawCentered(img, title, p.shadow, canvasWidth/2+2, 142, 5)
	drawCentered(img, title, p.text, canvasWidth/2, 140, 5)
	drawCentered(img, p.taglineFor(category), p.text, canvasWidth/2, 230, 2)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return rendered{}, fmt.Errorf("failed to encode placeholder png: %w", err)
	}
	return rendered{PNG: buf.Bytes(), Model: "local_" + p.name}, nil
}

// drawCentered renders s with the built-in bitmap face, scaled by factor, centered on
// cx with its top edge at top. The scale shrinks to keep the text on the canvas.
func drawCentered(dst *image.RGBA, s string, c color.RGBA, cx, top, scale int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 || h == 0 {
		return
	}
	for scale > 1 && w*scale > canvasWidth-40 {
		scale--
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	sw, sh := w*scale, h*scale
	r := image.Rect(cx-sw/2, top, cx-sw/2+sw, top+sh)
	draw.ApproxBiLinear.Scale(dst, r, glyphs, glyphs.Bounds(), draw.Over, nil)
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
