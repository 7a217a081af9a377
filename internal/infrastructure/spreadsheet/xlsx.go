package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXParser reads the first worksheet of an Excel workbook
type XLSXParser struct {
	headers   []string
	headerMap map[string]int
	rows      [][]string
	cursor    int
}

// NewXLSXParser opens a workbook from a reader and loads its first sheet
func NewXLSXParser(r io.Reader) (*XLSXParser, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return &XLSXParser{rows: rows, headerMap: make(map[string]int)}, nil
}

// ParseHeader reads the header row
func (p *XLSXParser) ParseHeader() error {
	if len(p.rows) == 0 {
		return ErrMissingHeader
	}
	record := p.rows[0]
	p.headers = make([]string, len(record))
	for i, h := range record {
		header := strings.TrimSpace(h)
		p.headers[i] = header
		p.headerMap[header] = i
	}
	if len(p.headers) == 0 {
		return ErrMissingHeader
	}
	p.cursor = 1
	return nil
}

// Headers returns the parsed header names
func (p *XLSXParser) Headers() []string {
	return p.headers
}

// HasHeader checks if a header exists
func (p *XLSXParser) HasHeader(name string) bool {
	_, ok := p.headerMap[name]
	return ok
}

// ReadRow reads the next data row
func (p *XLSXParser) ReadRow() (*Row, error) {
	if p.cursor >= len(p.rows) {
		return nil, io.EOF
	}
	record := p.rows[p.cursor]
	p.cursor++

	row := &Row{
		LineNumber: p.cursor, // cursor already advanced past the 1-based line
		Data:       make(map[string]string, len(p.headers)),
		RawFields:  record,
	}
	for i, header := range p.headers {
		if i < len(record) {
			row.Data[header] = strings.TrimSpace(record[i])
		} else {
			row.Data[header] = ""
		}
	}
	return row, nil
}

// ReadAllRows reads every remaining data row, skipping fully empty ones
func (p *XLSXParser) ReadAllRows() ([]*Row, error) {
	var rows []*Row
	for {
		row, err := p.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, err
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
