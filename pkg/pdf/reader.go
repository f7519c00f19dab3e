package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu would otherwise create a configuration directory on first use
	api.DisableConfigDir()
}

// document pairs two views of the same bytes: pdfcpu validates the file,
// resolves XObjects to objects and renders images, ledongthuc/pdf
// interprets content streams.
type document struct {
	ctx  *model.Context
	text *lpdf.Reader
}

func readDocument(content []byte) (doc *document, err error) {
	defer recoverError("read document", &err)

	// without optimization identical image streams keep their own objects
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadAndValidate(bytes.NewReader(content), conf)
	if err != nil {
		return nil, err
	}

	textReader, err := lpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	return &document{ctx: ctx, text: textReader}, nil
}

func (d *document) PageCount() int {
	return d.ctx.PageCount
}

func (d *document) page(pageNr int) (lpdf.Page, error) {
	if pageNr < 1 || pageNr > d.text.NumPage() {
		return lpdf.Page{}, fmt.Errorf("page %d out of range", pageNr)
	}
	page := d.text.Page(pageNr)
	if page.V.IsNull() {
		return lpdf.Page{}, fmt.Errorf("page %d not found", pageNr)
	}
	return page, nil
}

func (d *document) ExtractText(pageNr int) (text string, err error) {
	defer recoverError("extract text", &err)

	page, err := d.page(pageNr)
	if err != nil {
		return "", err
	}
	collector := &textCollector{}
	if err = newContentWalker(d.ctx.XRefTable, collector).walkPage(page, pageNr); err != nil {
		return "", err
	}
	return collector.text.String(), nil
}

func (d *document) VisitImages(pageNr int, visit ImagePaintFunc) (err error) {
	defer recoverError("visit images", &err)

	page, err := d.page(pageNr)
	if err != nil {
		return err
	}
	painter := &imagePainter{ctx: d.ctx, pageNr: pageNr, visit: visit, payloads: make(map[int][]byte)}
	return newContentWalker(d.ctx.XRefTable, painter).walkPage(page, pageNr)
}

// textCollector joins the text shown on a page, one line per text object.
type textCollector struct {
	text strings.Builder
}

func (c *textCollector) beginText() {
	c.nextLine()
}

func (c *textCollector) nextLine() {
	if c.text.Len() > 0 && !strings.HasSuffix(c.text.String(), "\n") {
		c.text.WriteByte('\n')
	}
}

func (c *textCollector) showText(text string) {
	c.text.WriteString(text)
}

func (c *textCollector) paintImage(paintEvent) error {
	return nil
}

// imagePainter extracts the payload of every painted image. Images painted
// more than once are extracted once.
type imagePainter struct {
	ctx      *model.Context
	pageNr   int
	visit    ImagePaintFunc
	payloads map[int][]byte
}

func (p *imagePainter) beginText()      {}
func (p *imagePainter) nextLine()       {}
func (p *imagePainter) showText(string) {}

func (p *imagePainter) paintImage(event paintEvent) error {
	content, cached := p.payloads[event.objNr]
	if !cached || event.objNr == 0 {
		data, err := p.extract(event)
		if err != nil {
			return err
		}
		content = data
		if event.objNr != 0 {
			p.payloads[event.objNr] = content
		}
	}
	if len(content) == 0 {
		return nil
	}
	return p.visit(PaintedImage{PageNr: p.pageNr, Content: content})
}

func (p *imagePainter) extract(event paintEvent) ([]byte, error) {
	img, err := pdfcpu.ExtractImage(p.ctx, event.image, false, event.resource, event.objNr, false)
	if err != nil {
		return nil, err
	}
	// images with unsupported filters are skipped
	if img == nil || img.Reader == nil {
		return nil, nil
	}
	return io.ReadAll(img)
}

func (d *document) Close() error {
	d.ctx = nil
	d.text = nil
	return nil
}
