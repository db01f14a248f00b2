package parsers

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// SkipBOM drops a leading UTF-8 byte order mark.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom := []byte{0xEF, 0xBB, 0xBF}
	peeked, err := br.Peek(3)
	if err != nil {
		return br
	}
	for i, b := range bom {
		if peeked[i] != b {
			return br
		}
	}
	br.Discard(3)
	return br
}

// SafeFloat converts a spreadsheet cell to a number. Blank cells, cells
// containing any letter and unparseable text all give def.
func SafeFloat(value string, def float64) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return def
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return def
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
