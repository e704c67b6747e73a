package source

import (
	"fmt"

	plumber "github.com/allieus/pdfplumber-go/pkg/pdf"

	"gazette-extractor/internal/types"
)

// plumberDocument adapts a pdfplumber-go document. The backend supports
// true region cropping: the page is cropped to the column box and text is
// extracted from the cropped page only.
type plumberDocument struct {
	doc plumber.Document
}

func openPlumber(path string) (Document, error) {
	doc, err := plumber.OpenWithLedongthuc(path)
	if err != nil {
		return nil, types.NewAppError(types.ErrSourceUnreadable,
			fmt.Sprintf("cannot open source document: %s", path), err)
	}
	return &plumberDocument{doc: doc}, nil
}

func (d *plumberDocument) PageCount() int {
	return d.doc.PageCount()
}

func (d *plumberDocument) Page(num int) (Page, error) {
	if num < 1 || num > d.doc.PageCount() {
		return nil, types.NewAppError(types.ErrInvalidInput,
			fmt.Sprintf("page number out of range: %d", num), nil)
	}
	page, err := d.doc.GetPage(num - 1)
	if err != nil {
		return nil, types.NewAppError(types.ErrExtractFailed,
			fmt.Sprintf("cannot load page %d", num), err)
	}
	return &plumberPage{page: page, num: num}, nil
}

func (d *plumberDocument) Close() error {
	return d.doc.Close()
}

type plumberPage struct {
	page plumber.Page
	num  int
}

func (p *plumberPage) Number() int {
	return p.num
}

func (p *plumberPage) Width() float64 {
	return p.page.GetWidth()
}

func (p *plumberPage) Height() float64 {
	return p.page.GetHeight()
}

// ExtractRegion crops the page to box and extracts the cropped text.
// pdfplumber boxes use the same top-left origin as ours, so the box maps
// across directly.
func (p *plumberPage) ExtractRegion(box types.BoundingBox) (string, error) {
	return safeExtract(p.num, func() string {
		cropped := p.page.Crop(plumber.BoundingBox{
			X0: box.Left,
			Y0: box.Top,
			X1: box.Right,
			Y1: box.Bottom,
		})
		return cropped.ExtractText()
	})
}
