package table

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTo serializes the table as a nested C array-initializer:
//
//	<elementType> <name> =
//	{
//	    {
//	        "<fontName>", <fontSize>, <lineHeight>, <rangeFrom>, <rangeTo>,
//	        { per character: { <advanceWidth>, { <intensity rows> } } }
//	    },
//	    ...
//	};
//
// Indentation is cosmetic; element order and nesting depth are the contract
// consumers parse by. Table implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	fmt.Fprintf(bw, "%s %s =\n{\n", t.ElementType, t.Name)
	for _, blk := range t.Blocks {
		writeFontBlock(bw, blk)
	}
	bw.WriteString("};\n")
	err := bw.Flush()
	return cw.written, err
}

var _ io.WriterTo = &Table{}

func writeFontBlock(w *bufio.Writer, blk *FontBlock) {
	w.WriteString("\t{\n")
	fmt.Fprintf(w, "\t\t%q,\n", blk.FontName)
	fmt.Fprintf(w, "\t\t%d,\n", blk.Size)
	fmt.Fprintf(w, "\t\t%d,\n", blk.LineHeight)
	fmt.Fprintf(w, "\t\t%d,\n", blk.Range.From)
	fmt.Fprintf(w, "\t\t%d,\n", blk.Range.To)
	w.WriteString("\t\t{\n")
	for _, g := range blk.Glyphs {
		writeGlyphEntry(w, g)
	}
	w.WriteString("\t\t},\n")
	w.WriteString("\t},\n")
}

func writeGlyphEntry(w *bufio.Writer, g GlyphEntry) {
	w.WriteString("\t\t\t{\n")
	fmt.Fprintf(w, "\t\t\t\t%d,\n", g.Advance)
	w.WriteString("\t\t\t\t{\n")
	for y := 0; y < g.Grid.Height; y++ {
		w.WriteString("\t\t\t\t\t")
		for x := 0; x < g.Grid.Width; x++ {
			fmt.Fprintf(w, "%d,", g.Grid.At(x, y))
		}
		w.WriteByte('\n')
	}
	w.WriteString("\t\t\t\t},\n")
	w.WriteString("\t\t\t},\n")
}

// countingWriter tracks the byte count for the io.WriterTo contract.
type countingWriter struct {
	w       io.Writer
	written int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.written += int64(n)
	return n, err
}
