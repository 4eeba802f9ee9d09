package walk

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// Read parses one point per line, "x y z" separated by blanks or commas.
// Blank lines and lines starting with '#' are skipped. The closure point may
// be given or omitted; the result is validated as by New.
func Read(r io.Reader) (Walk, error) {
	var pts []r3.Vector
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 coordinates, got %d: %w", line, len(fields), ErrSyntax)
		}
		var xyz [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrSyntax)
			}
			xyz[i] = v
		}
		pts = append(pts, r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return New(pts)
}
