package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid request payload")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyDocument       = errors.New("no extractable text in document")
	ErrUnsupportedPaperURL = errors.New("unsupported paper URL")
	ErrMetadataFetch       = errors.New("fetching paper metadata failed")
)
