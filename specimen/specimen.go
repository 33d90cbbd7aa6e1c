// Package specimen renders proof sheets of a glyph table, to check a font by
// eye before flashing it.
package specimen

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/phpdave11/gofpdf"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/encoding/charmap"

	"github.com/flavioheleno/fonttab"
	"github.com/flavioheleno/fonttab/image1bit"
)

// Opts is the configuration of a proof sheet.
type Opts struct {
	Columns int              // Glyphs per row (default: 16)
	Scale   int              // PNG pixels per glyph pixel (default: 4)
	Charset *charmap.Charmap // Code page for PDF labels (default: ISO 8859-1)
}

func (o *Opts) withDefaults() Opts {
	var d Opts
	if o != nil {
		d = *o
	}
	if d.Columns <= 0 {
		d.Columns = 16
	}
	if d.Scale <= 0 {
		d.Scale = 4
	}
	if d.Charset == nil {
		d.Charset = charmap.ISO8859_1
	}
	return d
}

// cell is the pitch of one glyph on the sheet, glyph plus 1px gutter.
const cell = fonttab.GlyphWidth + 1

// Sheet lays the glyphs of t out in table order, Columns per row, lit pixels
// white on black. It is the unscaled bitmap behind PNG.
func Sheet(ctx context.Context, t *fonttab.Table, opts *Opts) (*image.Gray, error) {
	o := opts.withDefaults()
	recs, err := t.Records(ctx, 0)
	if err != nil {
		return nil, err
	}
	rows := (len(recs) + o.Columns - 1) / o.Columns
	sheet := image.NewGray(image.Rect(0, 0, o.Columns*cell+1, rows*cell+1))

	for n, r := range recs {
		glyph := glyphImage(r)
		ox, oy := 1+(n%o.Columns)*cell, 1+(n/o.Columns)*cell
		for y := 0; y < fonttab.GlyphHeight; y++ {
			for x := 0; x < fonttab.GlyphWidth; x++ {
				if glyph.BitAt(x, y) {
					sheet.SetGray(ox+x, oy+y, color.Gray{Y: 0xFF})
				}
			}
		}
	}
	return sheet, nil
}

// glyphImage wraps the column bytes of r in a page image.
func glyphImage(r fonttab.Record) *image1bit.VerticalLSB {
	cols := r.Columns()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, fonttab.GlyphWidth, fonttab.GlyphHeight))
	copy(img.Pix, cols[:])
	return img
}

// PNG writes the proof sheet of t as a PNG image, scaled up by Opts.Scale
// with nearest neighbour sampling so pixels stay square.
func PNG(ctx context.Context, w io.Writer, t *fonttab.Table, opts *Opts) error {
	o := opts.withDefaults()
	sheet, err := Sheet(ctx, t, &o)
	if err != nil {
		return err
	}
	b := sheet.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*o.Scale, b.Dy()*o.Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), sheet, b, xdraw.Src, nil)
	return png.Encode(w, dst)
}

// PDF layout, in millimetres.
const (
	pdfMargin = 10.0
	pdfDot    = 1.2 // Side of one glyph pixel
	pdfCellW  = pdfDot*fonttab.GlyphWidth + 2.4
	pdfCellH  = pdfDot*fonttab.GlyphHeight + 2.4 + 3 // Room for the label
)

// PDF writes an A4 proof sheet of t: one framed cell per glyph, labelled
// with its character and hex code.
func PDF(ctx context.Context, w io.Writer, t *fonttab.Table, opts *Opts) error {
	o := opts.withDefaults()
	recs, err := t.Records(ctx, 0)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Font table specimen", true)
	pdf.SetFont("Courier", "", 5)
	pdf.SetDrawColor(0xC0, 0xC0, 0xC0)
	pdf.SetFillColor(0, 0, 0)
	pageW, pageH := pdf.GetPageSize()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	perRow := o.Columns
	if fit := int((pageW - 2*pdfMargin) / pdfCellW); perRow > fit {
		perRow = fit
	}
	perPage := perRow * int((pageH-2*pdfMargin)/pdfCellH)

	for n, r := range recs {
		if n%perPage == 0 {
			pdf.AddPage()
		}
		i := n % perPage
		x := pdfMargin + float64(i%perRow)*pdfCellW
		y := pdfMargin + float64(i/perRow)*pdfCellH
		pdf.Rect(x, y, pdfCellW, pdfCellH, "D")

		label := fmt.Sprintf("%c %02X", r.DisplayChar(o.Charset), r.Code)
		pdf.Text(x+0.6, y+2.4, tr(label))

		glyph := glyphImage(r)
		gx, gy := x+1.2, y+3+1.2
		for py := 0; py < fonttab.GlyphHeight; py++ {
			for px := 0; px < fonttab.GlyphWidth; px++ {
				if glyph.BitAt(px, py) {
					pdf.Rect(gx+float64(px)*pdfDot, gy+float64(py)*pdfDot, pdfDot, pdfDot, "F")
				}
			}
		}
	}
	if len(recs) == 0 {
		pdf.AddPage()
	}
	return pdf.Output(w)
}
