package flan

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ShowFigure decodes a previously saved figure file (PNG or JPEG) and
// returns the image for display.
func ShowFigure(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("show figure: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("show figure %s: %w", path, err)
	}
	return img, nil
}
