package poster

import (
	"hash/fnv"
	"image"
	"image/color"
)

// Placeholder dimensions match the poster thumbnails shown next to results.
const (
	PlaceholderWidth  = 140
	PlaceholderHeight = 210
)

// Placeholder renders a gray vertical gradient with an accent bar whose color
// depends only on the title.
func Placeholder(title string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))
	for y := 0; y < PlaceholderHeight; y++ {
		shade := uint8(30 + 60*y/(PlaceholderHeight-1))
		c := color.RGBA{R: shade, G: shade, B: shade, A: 0xff}
		for x := 0; x < PlaceholderWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	accent := accentColor(title)
	barTop := PlaceholderHeight*3/4 - 6
	for y := barTop; y < barTop+12; y++ {
		for x := 12; x < PlaceholderWidth-12; x++ {
			img.SetRGBA(x, y, accent)
		}
	}
	return img
}

func accentColor(title string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	sum := h.Sum32()
	// Keep channels bright enough to stand out against the gray.
	return color.RGBA{
		R: 0x80 | uint8(sum>>16),
		G: 0x20 | uint8(sum>>8)&0x7f,
		B: 0x20 | uint8(sum)&0x7f,
		A: 0xff,
	}
}
