package signalio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned for lines that do not parse as numbers.
	ErrSyntax = errors.New("signalio: invalid number")
	// ErrShape is returned when rows disagree on the number of columns, or
	// a single-column reader meets a wider row.
	ErrShape = errors.New("signalio: inconsistent row width")
)

// ReadMatrixText parses rows of numbers from r. Every row must have the
// same number of columns. The result is shaped [rows][columns].
func ReadMatrixText(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		row, err := parseRow(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if row == nil {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrShape, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadText parses a single-column signal from r.
func ReadText(r io.Reader) ([]float64, error) {
	rows, err := ReadMatrixText(r)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, fmt.Errorf("%w: got %d columns, want 1", ErrShape, len(row))
		}
		out[i] = row[0]
	}
	return out, nil
}

// parseRow returns nil for blank and comment lines.
func parseRow(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return nil, nil
	}
	s = strings.TrimSpace(strings.Trim(s, "[]"))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, f)
		}
		row[i] = v
	}
	return row, nil
}

// WriteText writes x to w, one value per line, with the shortest
// representation that parses back to the same float64.
func WriteText(w io.Writer, x []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range x {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteMatrixText writes m to w, one space-separated row per line.
func WriteMatrixText(w io.Writer, m [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadTextFile reads a single-column signal from path.
func ReadTextFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signal file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadText(f)
}

// ReadMatrixTextFile reads a multi-column signal from path.
func ReadMatrixTextFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signal file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadMatrixText(f)
}

// WriteTextFile writes a single-column signal to path.
func WriteTextFile(path string, x []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create signal file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return WriteText(f, x)
}

// WriteMatrixTextFile writes a multi-column signal to path.
func WriteMatrixTextFile(path string, m [][]float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create signal file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return WriteMatrixText(f, m)
}

// Column extracts column ch of a [rows][columns] matrix.
func Column(m [][]float64, ch int) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		out[i] = row[ch]
	}
	return out
}

// Rows turns a single-column signal into a [rows][1] matrix.
func Rows(x []float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, v := range x {
		out[i] = []float64{v}
	}
	return out
}
