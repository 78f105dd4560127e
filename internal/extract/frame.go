// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/extractfeature/pkg/types"
)

// missingSentinels are raw values treated as a missing cell on load.
var missingSentinels = map[string]bool{
	"":     true,
	"nan":  true,
	"NULL": true,
}

// Cell is one value in a Frame. A missing cell renders as an empty
// string on output.
type Cell struct {
	Value   string
	Missing bool
}

func stringCell(v string) Cell { return Cell{Value: v} }
func missingCell() Cell        { return Cell{Missing: true} }

func boolCell(b bool) Cell {
	return Cell{Value: strconv.FormatBool(b)}
}

func intCell(n int) Cell {
	return Cell{Value: strconv.Itoa(n)}
}

// Frame is an ordered, column-named table of cells. It is the working
// representation between CSV load and CSV save.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]Cell
}

// NewFrame creates an empty frame with the given column order.
func NewFrame(columns []string) *Frame {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Frame{columns: append([]string(nil), columns...), index: index}
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return f.columns }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return len(f.rows) }

// Row returns the cells of row i in column order.
func (f *Frame) Row(i int) []Cell { return f.rows[i] }

// Column returns the cells of the named column, or false when the
// column does not exist.
func (f *Frame) Column(name string) ([]Cell, bool) {
	idx, ok := f.index[name]
	if !ok {
		return nil, false
	}
	cells := make([]Cell, len(f.rows))
	for i, row := range f.rows {
		cells[i] = row[idx]
	}
	return cells, true
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// AppendRow adds a row; the cell count must match the column count.
func (f *Frame) AppendRow(cells []Cell) error {
	if len(cells) != len(f.columns) {
		return fmt.Errorf("row has %d cells, frame has %d columns", len(cells), len(f.columns))
	}
	f.rows = append(f.rows, cells)
	return nil
}

// AddColumn appends a new column with one cell per existing row.
func (f *Frame) AddColumn(name string, cells []Cell) error {
	if _, exists := f.index[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(cells) != len(f.rows) {
		return fmt.Errorf("column %q has %d cells, frame has %d rows", name, len(cells), len(f.rows))
	}
	f.index[name] = len(f.columns)
	f.columns = append(f.columns, name)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], cells[i])
	}
	return nil
}

// ReadCSV reads CSV data from r, keeping only the named fields in the
// given order. The first record is the header. Every named field must
// appear in the header; input with no header row is an error.
func ReadCSV(r io.Reader, fields []string) (*Frame, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("error reading CSV file: no columns to parse from file")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}

	headerIdx := make(map[string]int, len(header))
	for i, name := range header {
		headerIdx[name] = i
	}

	sourceIdx := make([]int, len(fields))
	for i, name := range fields {
		idx, ok := headerIdx[name]
		if !ok {
			return nil, fmt.Errorf("column %q not found in input", name)
		}
		sourceIdx[i] = idx
	}

	frame := NewFrame(fields)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV file: %w", err)
		}

		cells := make([]Cell, len(fields))
		for i, src := range sourceIdx {
			raw := record[src]
			if missingSentinels[raw] {
				cells[i] = missingCell()
			} else {
				cells[i] = stringCell(raw)
			}
		}
		if err := frame.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// WriteCSV writes the frame as CSV with a header row. Missing cells
// render as empty strings.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	record := make([]string, len(f.columns))
	for _, row := range f.rows {
		for i, c := range row {
			if c.Missing {
				record[i] = ""
			} else {
				record[i] = c.Value
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ConvertTypes validates and canonicalizes every cell of the given
// fields against its declared type. Missing cells pass through.
func (f *Frame) ConvertTypes(fields []types.FieldSpec) error {
	for _, spec := range fields {
		idx, ok := f.index[spec.Name]
		if !ok {
			return fmt.Errorf("column %q not found", spec.Name)
		}
		for i := range f.rows {
			cell := &f.rows[i][idx]
			if cell.Missing {
				continue
			}
			converted, err := convertValue(cell.Value, spec.Type)
			if err != nil {
				return fmt.Errorf("converting field %q row %d: %w", spec.Name, i+1, err)
			}
			cell.Value = converted
		}
	}
	return nil
}

func convertValue(raw string, t types.FieldType) (string, error) {
	switch t {
	case types.FieldString:
		return raw, nil
	case types.FieldInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%q is not an integer", raw)
		}
		return strconv.FormatInt(n, 10), nil
	case types.FieldFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", fmt.Errorf("%q is not a float", raw)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case types.FieldBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf("%q is not a bool", raw)
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("unknown field type %q", t)
	}
}
