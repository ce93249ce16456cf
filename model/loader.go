package model

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadGrid reads a grid from a .csv or .json file
func LoadGrid(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to open file: %+v", filename)
	}
	defer f.Close()

	var g *Grid
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		g, err = ParseCSV(f)
	case ".json":
		g, err = ParseJSON(f)
	default:
		return nil, errors.Wrapf(&FormatError{Reason: "unsupported file extension"}, "[LoadGrid] %+v", filename)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to parse file: %+v", filename)
	}
	return g, nil
}

// ParseCSV reads comma separated integer rows. Any nonzero value is alive.
func ParseCSV(r io.Reader) (*Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row lengths are checked below to report a FormatError
	reader.TrimLeadingSpace = true

	var table [][]int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fe := &FormatError{Reason: err.Error()}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				fe.Line, fe.Reason = pe.Line, pe.Err.Error()
			}
			return nil, fe
		}
		line, _ := reader.FieldPos(0)
		row := make([]int, len(record))
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, &FormatError{Line: line, Reason: "non-integer cell " + strconv.Quote(field)}
			}
			row[i] = v
		}
		if len(table) > 0 && len(row) != len(table[0]) {
			return nil, &FormatError{Line: line, Reason: "ragged row: got " + strconv.Itoa(len(row)) +
				" cells, want " + strconv.Itoa(len(table[0]))}
		}
		table = append(table, row)
	}
	return fromTable(table)
}

// ParseJSON reads an array of integer arrays, e.g. [[0,1,0],[1,1,1]]
func ParseJSON(r io.Reader) (*Grid, error) {
	var table [][]int
	dec := json.NewDecoder(r)
	if err := dec.Decode(&table); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &FormatError{Reason: "trailing data after grid"}
	}
	for i, row := range table {
		if len(row) != len(table[0]) {
			return nil, &FormatError{Line: i + 1, Reason: "ragged row: got " + strconv.Itoa(len(row)) +
				" cells, want " + strconv.Itoa(len(table[0]))}
		}
	}
	return fromTable(table)
}

func fromTable(table [][]int) (*Grid, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, &FormatError{Reason: "empty grid"}
	}
	g := newGrid(len(table), len(table[0]))
	for r, row := range table {
		for c, v := range row {
			g.cells[r][c] = v != 0
		}
	}
	return g, nil
}
