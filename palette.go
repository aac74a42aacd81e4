package flan

import "image/color"

// PaletteSize is the number of distinct series colors before cycling.
const PaletteSize = 20

// palette20 is the fixed qualitative palette used for comparator series.
var palette20 = [PaletteSize]color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 174, G: 199, B: 232, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 255, G: 187, B: 120, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 152, G: 223, B: 138, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 255, G: 152, B: 150, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 197, G: 176, B: 213, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 196, G: 156, B: 148, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 247, G: 182, B: 210, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 199, G: 199, B: 199, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 219, G: 219, B: 141, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
	{R: 158, G: 218, B: 229, A: 255},
}

// Palette returns the series color for index brush, cycling past the end of
// the palette.
func Palette(brush int) color.RGBA {
	if brush < 0 {
		brush = -brush
	}
	return palette20[brush%PaletteSize]
}
