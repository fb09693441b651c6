package trypmorph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderMorphologyOverlay generates a JPG image annotating the analysis of a
// cell of the given dimensions and writes it to a file.
func RenderMorphologyOverlay(res *MorphologyResult, width, height int, outputPath string) error {
	img, err := renderMorphologyImage(res, width, height)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create overlay file: %w", err)
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// RenderMorphologyOverlayBytes generates the annotation image and returns it
// as JPEG bytes.
func RenderMorphologyOverlayBytes(res *MorphologyResult, width, height int) ([]byte, error) {
	img, err := renderMorphologyImage(res, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderMorphologyImage creates the overlay image in memory: the traced
// midline with anterior/posterior markers, plus every classified DNA object
// at its centroid with a K/N label.
func renderMorphologyImage(res *MorphologyResult, width, height int) (*image.RGBA, error) {
	if res == nil {
		return nil, fmt.Errorf("no morphology data")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid overlay dimensions %dx%d", width, height)
	}

	// Cell crops are small; render scaled up to a fixed width.
	const targetWidth = 400
	scale := float64(targetWidth) / float64(width)
	imgW := targetWidth
	imgH := int(float64(height) * scale)
	if imgH < 40 {
		imgH = 40
	}

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{20, 20, 30, 255}}, image.Point{}, draw.Src)

	midlineColor := color.RGBA{200, 200, 200, 255}
	anteriorColor := color.RGBA{80, 220, 80, 255}
	posteriorColor := color.RGBA{80, 120, 240, 255}
	kColor := color.RGBA{240, 80, 80, 255}
	nColor := color.RGBA{240, 210, 70, 255}

	for _, p := range res.Midline {
		fillSquare(img, int(float64(p.X)*scale), int(float64(p.Y)*scale), 1, midlineColor)
	}
	if res.Anterior != nil {
		fillSquare(img, int(float64(res.Anterior.X)*scale), int(float64(res.Anterior.Y)*scale), 3, anteriorColor)
		drawLabel(img, int(float64(res.Anterior.X)*scale)+6, int(float64(res.Anterior.Y)*scale), "A", anteriorColor)
	}
	if res.Posterior != nil {
		fillSquare(img, int(float64(res.Posterior.X)*scale), int(float64(res.Posterior.Y)*scale), 3, posteriorColor)
		drawLabel(img, int(float64(res.Posterior.X)*scale)+6, int(float64(res.Posterior.Y)*scale), "P", posteriorColor)
	}

	for _, o := range res.ObjectsK {
		drawObject(img, o, scale, kColor)
	}
	for _, o := range res.ObjectsN {
		drawObject(img, o, scale, nColor)
	}

	header := res.CountKN
	if res.KNOrdered != "" {
		header = fmt.Sprintf("%s  (%s, length %.1f px)", res.CountKN, res.KNOrdered, res.Length)
	}
	drawLabel(img, 8, 16, header, color.RGBA{255, 255, 255, 255})

	return img, nil
}

func drawObject(img *image.RGBA, o *DNAObject, scale float64, c color.RGBA) {
	x := int(o.Centroid.X * scale)
	y := int(o.Centroid.Y * scale)
	drawCross(img, x, y, 5, c)
	drawLabel(img, x+7, y+4, o.Type.Code(), c)
}

func fillSquare(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	b := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if image.Pt(x, y).In(b) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawCross(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	b := img.Bounds()
	for d := -r; d <= r; d++ {
		if image.Pt(cx+d, cy).In(b) {
			img.SetRGBA(cx+d, cy, c)
		}
		if image.Pt(cx, cy+d).In(b) {
			img.SetRGBA(cx, cy+d, c)
		}
	}
}

func drawLabel(img *image.RGBA, x, y int, label string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
