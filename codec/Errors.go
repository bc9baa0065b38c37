// Package codec converts workbooks to and from the structured document format,
// CSV and XLSX.
package codec

import "errors"

// ErrFileAccess indicates the file could not be opened, read or written.
var ErrFileAccess = errors.New("file access failed")

// ErrInvalidDocument indicates malformed or structurally wrong input.
var ErrInvalidDocument = errors.New("invalid document")

// ErrUnsupportedVersion indicates a document whose version tag is not DocumentVersion.
var ErrUnsupportedVersion = errors.New("unsupported document version")
