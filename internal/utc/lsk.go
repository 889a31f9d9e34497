package utc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/deltas"
)

const lskKey = "DELTET/DELTA_AT"

// ErrNoLeapSeconds is returned for kernels without a DELTET/DELTA_AT array.
var ErrNoLeapSeconds = errors.New("no leap seconds in kernel under " + lskKey)

var monthNames = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// LoadLSK reads a NAIF leap-seconds kernel (naif0012.tls and successors).
func LoadLSK(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening leap-seconds kernel: %w", err)
	}
	defer f.Close()
	t, err := ParseLSK(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// ParseLSK parses the text of a NAIF leap-seconds kernel. Only the
// \begindata sections are read.
func ParseLSK(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data := dataSections(string(raw))

	i := strings.Index(data, lskKey)
	if i < 0 {
		return nil, ErrNoLeapSeconds
	}
	rest := data[i+len(lskKey):]
	open, end := strings.Index(rest, "("), strings.Index(rest, ")")
	if open < 0 || end < open {
		return nil, fmt.Errorf("%w: unterminated %s array", ErrInvalidTable, lskKey)
	}
	fields := strings.FieldsFunc(rest[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, ErrNoLeapSeconds
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of values in %s", ErrInvalidTable, lskKey)
	}

	epochs := make([]int64, 0, len(fields)/2)
	values := make([]int64, 0, len(fields)/2)
	for j := 0; j < len(fields); j += 2 {
		ls, err := strconv.ParseInt(fields[j], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		date, err := parseKernelDate(fields[j+1])
		if err != nil {
			return nil, err
		}
		epochs = append(epochs, date.J2000DayNumber()*deltas.SecondsPerDay-deltas.SecondsPerHalfDay)
		values = append(values, ls)
	}
	return NewTable(epochs, values)
}

func dataSections(kernel string) string {
	var b strings.Builder
	for {
		i := strings.Index(kernel, `\begindata`)
		if i < 0 {
			return b.String()
		}
		kernel = kernel[i+len(`\begindata`):]
		j := strings.Index(kernel, `\begintext`)
		if j < 0 {
			b.WriteString(kernel)
			return b.String()
		}
		b.WriteString(kernel[:j])
		b.WriteByte('\n')
		kernel = kernel[j:]
	}
}

// parseKernelDate reads "@1972-JAN-1".
func parseKernelDate(s string) (calendar.Date, error) {
	parts := strings.Split(strings.TrimPrefix(s, "@"), "-")
	if len(parts) != 3 {
		return calendar.Date{}, fmt.Errorf("%w: kernel date %q", calendar.ErrInvalidDate, s)
	}
	year, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: kernel date %q", calendar.ErrInvalidDate, s)
	}
	month, ok := monthNames[strings.ToUpper(parts[1])]
	if !ok {
		return calendar.Date{}, fmt.Errorf("%w: kernel date %q", calendar.ErrInvalidDate, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: kernel date %q", calendar.ErrInvalidDate, s)
	}
	return calendar.NewDate(year, month, day)
}
