package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/savid/latstats/pkg/summary"
)

// meanWidth is how many characters of the mean are printed. Extra digits are
// cut off, not rounded.
const meanWidth = 7

// Render writes the five summary lines to w in a single write.
func Render(w io.Writer, s summary.Stats) error {
	mean := FormatFloat(s.Mean)
	if len(mean) > meanWidth {
		mean = mean[:meanWidth]
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "fastest: %sms\n", FormatFloat(s.Min))
	fmt.Fprintf(&buf, "slowest: %sms\n", FormatFloat(s.Max))
	fmt.Fprintf(&buf, "average: %sms\n", mean)
	fmt.Fprintf(&buf, " median: %sms\n", FormatFloat(s.Median))
	fmt.Fprintf(&buf, "    99%%: %sms\n", FormatFloat(s.P99))

	_, err := w.Write(buf.Bytes())

	return err
}

// FormatFloat returns the shortest text that round-trips v. Integral values
// keep a ".0" suffix and exponents below -4 or from 16 up use e-notation,
// so 3 is "3.0", 0.00001 is "1e-05" and 1e16 is "1e+16".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)

	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}

	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(f, '.') {
		f += ".0"
	}

	return f
}
