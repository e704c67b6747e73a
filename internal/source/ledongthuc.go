package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"gazette-extractor/internal/types"
)

// ledongthucDocument adapts the ledongthuc/pdf reader. The library has no
// crop primitive, so region extraction filters row-positioned text by
// coordinates instead. Page dimensions come from pdfcpu, which resolves
// inherited media boxes reliably.
type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
	dims   []pdftypes.Dim
}

func openLedongthuc(path string) (Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, types.NewAppError(types.ErrSourceUnreadable,
			fmt.Sprintf("cannot open source document: %s", path), err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		file.Close()
		return nil, types.NewAppError(types.ErrSourceUnreadable,
			fmt.Sprintf("cannot read page dimensions: %s", path), err)
	}

	return &ledongthucDocument{file: file, reader: reader, dims: dims}, nil
}

func (d *ledongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *ledongthucDocument) Page(num int) (Page, error) {
	if num < 1 || num > d.reader.NumPage() {
		return nil, types.NewAppError(types.ErrInvalidInput,
			fmt.Sprintf("page number out of range: %d", num), nil)
	}

	var width, height float64
	if num <= len(d.dims) {
		width = d.dims[num-1].Width
		height = d.dims[num-1].Height
	}

	return &ledongthucPage{reader: d.reader, num: num, width: width, height: height}, nil
}

func (d *ledongthucDocument) Close() error {
	return d.file.Close()
}

type ledongthucPage struct {
	reader *pdf.Reader
	num    int
	width  float64
	height float64
}

func (p *ledongthucPage) Number() int {
	return p.num
}

func (p *ledongthucPage) Width() float64 {
	return p.width
}

func (p *ledongthucPage) Height() float64 {
	return p.height
}

// ExtractRegion walks the page's text rows and keeps the fragments whose
// position falls inside box. ledongthuc coordinates have the origin at the
// bottom-left corner, so the fragment Y is flipped against the page height
// before comparing with the top-down box.
func (p *ledongthucPage) ExtractRegion(box types.BoundingBox) (string, error) {
	return safeExtract(p.num, func() string {
		page := p.reader.Page(p.num)
		if page.V.IsNull() {
			return ""
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return ""
		}

		var sb strings.Builder
		for _, row := range rows {
			line := ""
			for _, t := range row.Content {
				if t.S == "" {
					continue
				}
				yTop := p.height - t.Y
				if t.X < box.Left || t.X > box.Right || yTop < box.Top || yTop > box.Bottom {
					continue
				}
				line += t.S
			}
			line = strings.TrimRight(line, " ")
			if line == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(line)
		}
		return sb.String()
	})
}
