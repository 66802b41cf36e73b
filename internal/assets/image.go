// Package assets decodes the texture images the renderer uploads.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
)

// Texture files, relative to the asset directory.
var (
	BackgroundPath = filepath.Join("tex", "background.png")
	HeadPath       = filepath.Join("sprites", "snakeHead.png")
	FoodPath       = filepath.Join("sprites", "food.png")
	BodyPath       = filepath.Join("sprites", "snakeBody.png")
)

// Load decodes a PNG or JPEG file into tightly packed NRGBA pixels.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns img as NRGBA with Stride == 4*width, copying only when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if ok && nrgba.Stride == b.Dx()*4 && b.Min == (image.Point{}) {
		return nrgba
	}
	nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return nrgba
}
