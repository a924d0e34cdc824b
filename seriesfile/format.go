package seriesfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/echoflaresat/paintmix/paint"
)

// Format writes s in the current format, colours sorted by name.
func Format(w io.Writer, s *paint.Series) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Manufacturer: %s\n", s.ID().Maker)
	fmt.Fprintf(bw, "Series: %s\n", s.ID().Name)
	for _, c := range s.Colours() {
		bw.WriteString(FormatColour(&c.NamedColour))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FormatColour returns the definition line of c.
func FormatColour(c *paint.NamedColour) string {
	v := c.RGB()
	return fmt.Sprintf("NamedColour(name=%s, rgb=RGB(red=0x%04X, green=0x%04X, blue=0x%04X), transparency=%q, permanence=%q)",
		strconv.Quote(c.Name()), uint16(v[0]), uint16(v[1]), uint16(v[2]),
		c.Transparency().Abbrev(), c.Permanence().Abbrev())
}
