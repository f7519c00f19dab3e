package test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

func GeneratePNG(width, height int) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, generateImage(width, height)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// GeneratePNG16 encodes a PNG with 16 bits per channel.
func GeneratePNG16(width, height int) []byte {
	img := image.NewRGBA64(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA64{R: uint16(x * 65535 / width), G: uint16(y * 65535 / height), B: 1000, A: 65535})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func GenerateJPEG(width, height int) []byte {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, generateImage(width, height), &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func GenerateGIF(width, height int) []byte {
	buf := new(bytes.Buffer)
	if err := gif.Encode(buf, generateImage(width, height), nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func generateImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / width), G: uint8(y * 255 / height), B: 128, A: 255})
		}
	}
	return img
}
