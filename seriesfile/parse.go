// Package seriesfile reads and writes paint series definitions.
//
// A definition is a manufacturer line, a series line and one line per
// colour:
//
//	Manufacturer: Acme
//	Series: Artists' Oils
//	NamedColour(name="Zinc White", rgb=RGB(red=0xF000, green=0xF000, blue=0xF000), transparency="O", permanence="AA")
//
// Files in the older format, with 8 bit colour lines such as
//
//	Zinc White: RGB(240, 240, 240), Transparency('O'), Permanence('AA')
//
// are still read. Their channels are shifted left 8 bits, which is how
// they were always converted; only the current format is written.
package seriesfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/echoflaresat/paintmix/paint"
	"github.com/echoflaresat/paintmix/rating"
	"github.com/echoflaresat/paintmix/rgb"
)

var ErrMalformed = errors.New("malformed series definition")

// ParseError locates a problem in a series definition.
type ParseError struct {
	Line int // 1 based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	manufacturerRE = regexp.MustCompile(`^Manufacturer:\s+(\S.*?)\s*$`)
	seriesRE       = regexp.MustCompile(`^Series:\s+(\S.*?)\s*$`)
	currentRE      = regexp.MustCompile(`^NamedColour\(name=("(?:[^"\\]|\\.)*"), rgb=(RGB\([^)]*\)), transparency="([^"]*)", permanence="([^"]*)"\)$`)
	legacyRE       = regexp.MustCompile(`^([^:]+):\s+(RGB\([^)]+\)), Transparency\(([^)]+)\), Permanence\(([^)]+)\)$`)
	rgbRE          = regexp.MustCompile(`^RGB\((.*)\)$`)
)

type lineParser func(line string) (*paint.NamedColour, error)

// Parse reads a series definition.
func Parse(r io.Reader) (*paint.Series, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	// trailing blank lines are harmless
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: too few lines: %d", ErrMalformed, len(lines))
	}

	m := manufacturerRE.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, &ParseError{Line: 1, Text: lines[0], Err: fmt.Errorf("%w: manufacturer not found", ErrMalformed)}
	}
	s := seriesRE.FindStringSubmatch(lines[1])
	if s == nil {
		return nil, &ParseError{Line: 2, Text: lines[1], Err: fmt.Errorf("%w: series name not found", ErrMalformed)}
	}
	series := paint.NewSeries(m[1], s[1])
	if len(lines) == 2 {
		return series, nil
	}

	parse := lineParser(parseCurrent)
	if legacyRE.MatchString(lines[2]) {
		parse = parseLegacy
	}
	for i, line := range lines[2:] {
		c, err := parse(line)
		if err == nil {
			_, err = series.Add(c)
		}
		if err != nil {
			return nil, &ParseError{Line: i + 3, Text: line, Err: err}
		}
	}
	return series, nil
}

func parseCurrent(line string) (*paint.NamedColour, error) {
	m := currentRE.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: badly formed colour", ErrMalformed)
	}
	name, err := strconv.Unquote(m[1])
	if err != nil {
		// written by hand; take the text between the quotes as it is
		name = m[1][1 : len(m[1])-1]
	}
	ch, err := parseRGB(m[2], 16)
	if err != nil {
		return nil, err
	}
	c := rgb.RGB16{rgb.Fixed16(ch[0]), rgb.Fixed16(ch[1]), rgb.Fixed16(ch[2])}
	return namedColour(name, c, m[3], m[4])
}

func parseLegacy(line string) (*paint.NamedColour, error) {
	m := legacyRE.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: badly formed colour", ErrMalformed)
	}
	ch, err := parseRGB(m[2], 8)
	if err != nil {
		return nil, err
	}
	var c rgb.RGB16
	for i, v := range ch {
		c[i] = rgb.Fixed8(v).Widen()
	}
	return namedColour(strings.TrimSpace(m[1]), c, unquote(m[3]), unquote(m[4]))
}

func namedColour(name string, c rgb.RGB16, transparency, permanence string) (*paint.NamedColour, error) {
	t, err := rating.Parse[rating.TransparencyScale](transparency)
	if err != nil {
		return nil, err
	}
	p, err := rating.Parse[rating.PermanenceScale](permanence)
	if err != nil {
		return nil, err
	}
	return paint.NewNamedColour(name, paint.NewColour(c, t, p)), nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// parseRGB parses an RGB literal with positional or red=/green=/blue=
// arguments in decimal or 0x hex, each fitting in bits.
func parseRGB(lit string, bits int) ([3]uint64, error) {
	var ch [3]uint64
	m := rgbRE.FindStringSubmatch(strings.TrimSpace(lit))
	if m == nil {
		return ch, fmt.Errorf("%w: bad RGB %q", ErrMalformed, lit)
	}
	args := strings.Split(m[1], ",")
	if len(args) != 3 {
		return ch, fmt.Errorf("%w: RGB needs 3 channels: %q", ErrMalformed, lit)
	}
	var seen [3]bool
	for i, arg := range args {
		idx := i
		key, val, named := strings.Cut(arg, "=")
		if named {
			switch strings.TrimSpace(key) {
			case "red":
				idx = rgb.R
			case "green":
				idx = rgb.G
			case "blue":
				idx = rgb.B
			default:
				return ch, fmt.Errorf("%w: unknown channel %q", ErrMalformed, key)
			}
		} else {
			val = arg
		}
		if seen[idx] {
			return ch, fmt.Errorf("%w: channel given twice in %q", ErrMalformed, lit)
		}
		seen[idx] = true
		v, err := strconv.ParseUint(strings.TrimSpace(val), 0, bits)
		if err != nil {
			return ch, fmt.Errorf("%w: channel %q: %v", ErrMalformed, val, err)
		}
		ch[idx] = v
	}
	return ch, nil
}
