package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/goregular"

	"pdfapi/pkg/config"
	"pdfapi/pkg/sniff"
)

const fontFamily = "goregular"

var (
	errImageNotRegistered = errors.New("image could not be registered")
	errNoPages            = errors.New("document has no pages")
)

type gofpdfWriter struct {
	pdf    *gofpdf.Fpdf
	config config.DocumentConfig
	pages  int
	images int
}

func newGofpdfWriter(c config.DocumentConfig) *gofpdfWriter {
	pageSize := gofpdf.SizeType{Wd: c.PageWidth, Ht: c.PageHeight}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           pageSize,
	})
	pdf.SetCompression(true)
	pdf.SetMargins(c.Margin, c.Margin, c.Margin)
	// every input is exactly one page, text past the bottom edge is clipped
	pdf.SetAutoPageBreak(false, c.Margin)
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.SetFont(fontFamily, "", c.FontSize)

	return &gofpdfWriter{pdf: pdf, config: c}
}

func (w *gofpdfWriter) addPage() {
	w.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w.config.PageWidth, Ht: w.config.PageHeight})
	w.pages++
}

func (w *gofpdfWriter) AddImagePage(content []byte, format sniff.Format) error {
	if format == sniff.None {
		return fmt.Errorf("unsupported image format")
	}

	imageName, options, info, err := w.registerImage(content, format)
	if err != nil {
		return err
	}

	width, height := fitToBox(info.Width(), info.Height(),
		w.config.PageWidth*w.config.ImageScale, w.config.PageHeight*w.config.ImageScale)

	w.addPage()
	// the PDF origin is the bottom left corner of the page
	w.pdf.ImageOptions(imageName, 0, w.config.PageHeight-height, width, height, false, options, 0, "")
	return w.pdf.Error()
}

func (w *gofpdfWriter) registerImage(content []byte, format sniff.Format) (string, gofpdf.ImageOptions, *gofpdf.ImageInfoType, error) {
	w.images++
	imageName := fmt.Sprintf("image-%d", w.images)
	options := gofpdf.ImageOptions{ImageType: format.String(), ReadDpi: false}
	info := w.pdf.RegisterImageOptionsReader(imageName, options, bytes.NewReader(content))
	err := w.pdf.Error()
	if err != nil && format == sniff.PNG {
		// gofpdf reads 8-bit non-interlaced PNG only
		w.pdf.ClearError()
		normalized, normErr := normalizePNG(content)
		if normErr != nil {
			return "", options, nil, fmt.Errorf("%w: %v", err, normErr)
		}
		imageName += "-8bit"
		info = w.pdf.RegisterImageOptionsReader(imageName, options, bytes.NewReader(normalized))
		err = w.pdf.Error()
	}
	if err != nil {
		return "", options, nil, err
	}
	if info == nil {
		return "", options, nil, errImageNotRegistered
	}
	return imageName, options, info, nil
}

// normalizePNG re-encodes a PNG as 8 bits per channel without interlacing.
func normalizePNG(content []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *gofpdfWriter) AddTextPage(text string) error {
	w.addPage()
	w.pdf.SetXY(w.config.Margin, w.config.Margin)
	w.pdf.MultiCell(0, w.config.FontSize*w.config.LineHeight, text, "", "L", false)
	return w.pdf.Error()
}

func (w *gofpdfWriter) PageCount() int {
	return w.pages
}

func (w *gofpdfWriter) Output() ([]byte, error) {
	if w.pages == 0 {
		return nil, errNoPages
	}
	buf := new(bytes.Buffer)
	if err := w.pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitToBox scales width and height to the largest size that fits inside
// maxWidth x maxHeight, keeping the aspect ratio.
func fitToBox(width, height, maxWidth, maxHeight float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return maxWidth, maxHeight
	}
	scale := math.Min(maxWidth/width, maxHeight/height)
	return width * scale, height * scale
}
