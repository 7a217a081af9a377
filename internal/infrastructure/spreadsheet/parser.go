package spreadsheet

import (
	"io"
	"path/filepath"
	"strings"
)

// Parser is the common surface of the CSV and XLSX readers
type Parser interface {
	ParseHeader() error
	Headers() []string
	HasHeader(name string) bool
	ReadRow() (*Row, error)
	ReadAllRows() ([]*Row, error)
}

// SupportedExtension reports whether a filename has an importable extension
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx", ".xls":
		return true
	}
	return false
}

// Open picks a parser by file extension and enforces the size bound before
// any byte is parsed. size is the declared upload size.
func Open(filename string, r io.Reader, size int64) (Parser, error) {
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return NewCSVParser(r)
	case ".xlsx", ".xls":
		return NewXLSXParser(r)
	default:
		return nil, ErrUnsupportedExtension
	}
}
