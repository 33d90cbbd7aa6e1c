package fonttab

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

// Opts is the configuration of the generated assembly listing.
type Opts struct {
	Label     string           // Table start label (default: "fonttab")
	Source    string           // Source named in the header (default: "font table")
	Directive string           // Byte emission directive (default: "db")
	HexPrefix string           // Hex number prefix (default: "$")
	Charset   *charmap.Charmap // Code page for listing comments (default: ISO 8859-1)
	Workers   int              // Concurrent encoders (default: GOMAXPROCS)

	// Optional logger for tracing the run
	Log logrus.FieldLogger
}

func (o *Opts) withDefaults() Opts {
	var d Opts
	if o != nil {
		d = *o
	}
	if d.Label == "" {
		d.Label = "fonttab"
	}
	if d.Source == "" {
		d.Source = "font table"
	}
	if d.Directive == "" {
		d.Directive = "db"
	}
	if d.HexPrefix == "" {
		d.HexPrefix = "$"
	}
	if d.Charset == nil {
		d.Charset = charmap.ISO8859_1
	}
	if d.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.Log = l
	}
	return d
}

const headerRule = "; -----------------------------------------------------------\n"

// Render returns the complete listing for recs: header, table start label,
// one directive per record in the given order, and the length symbol.
//
// opts can be nil to use defaults.
func Render(recs []Record, opts *Opts) []byte {
	o := opts.withDefaults()
	var b bytes.Buffer

	b.WriteString(headerRule)
	fmt.Fprintf(&b, "; Assembly font definitions. Generated from %s.\n", o.Source)
	fmt.Fprintf(&b, "; These are already in I2C command format. Jump to [ascii*%d]\n", RecordSize)
	b.WriteString(headerRule)
	b.WriteString("#ROM\n\n")
	fmt.Fprintf(&b, "%s\n\n", o.Label)
	b.WriteString("        ;       Command of action (Write 9 bytes to IIC)\n")
	b.WriteString("        ;       |   Co=0 (continuous), D/C#=1 (next bytes are data)\n")
	b.WriteString("        ;       |   |   First (most left) column of character\n")
	b.WriteString("        ;       |   |   |   Last (most right) column of character\n")
	b.WriteString("        ;       |   |   |   +-----------------------+   End of action\n")
	b.WriteString("        ;       |   |   |     (LSB:Top MSB:bottom)  |   |\n")
	for _, r := range recs {
		b.WriteString(r.Line(o.Directive, o.HexPrefix, o.Charset))
		b.WriteByte('\n')
	}
	// The assembler resolves the length as RecordSize * len(recs) bytes.
	fmt.Fprintf(&b, "\n%s_len     equ     $-%s\n\n", o.Label, o.Label)
	return b.Bytes()
}

// Generate encodes t and writes the listing to w in a single write. Nothing
// is written if any glyph fails to encode.
func Generate(ctx context.Context, w io.Writer, t *Table, opts *Opts) error {
	o := opts.withDefaults()
	recs, err := t.Records(ctx, o.Workers)
	if err != nil {
		return err
	}
	o.Log.WithField("glyphs", len(recs)).Debug("encoded table")
	if _, err := w.Write(Render(recs, &o)); err != nil {
		return &IOError{Op: "write", Path: "listing", Err: err}
	}
	return nil
}

// WriteFile encodes t and stores the listing at path. The listing is written
// to a temporary file next to path and renamed into place, so path is either
// complete or left untouched.
func WriteFile(ctx context.Context, path string, t *Table, opts *Opts) error {
	o := opts.withDefaults()
	recs, err := t.Records(ctx, o.Workers)
	if err != nil {
		return err
	}
	data := Render(recs, &o)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(op string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Op: op, Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	o.Log.WithFields(logrus.Fields{
		"path":   path,
		"glyphs": len(recs),
		"bytes":  len(recs) * RecordSize,
	}).Info("wrote font table")
	return nil
}
