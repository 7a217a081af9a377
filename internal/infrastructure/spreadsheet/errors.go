package spreadsheet

import "errors"

// Sentinel errors for file-level failures, raised before any row is written
var (
	ErrEmptyFile            = errors.New("file is empty")
	ErrFileTooLarge         = errors.New("file exceeds the maximum allowed size")
	ErrInvalidEncoding      = errors.New("file is not valid UTF-8")
	ErrMissingHeader        = errors.New("file has no header row")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrNoWorksheet          = errors.New("workbook contains no worksheet")
)

// MaxFileSize is the upper bound on uploads. Anything larger is rejected
// before parsing starts.
const MaxFileSize = 100 << 20 // 100MB
