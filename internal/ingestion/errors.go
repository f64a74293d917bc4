// Package ingestion turns raw input (files, uploads, URLs) into the clean
// plain text the analysis engine consumes. All input validation lives here;
// the core packages never return errors.
package ingestion

import "fmt"

// InputTooShortError is returned when a document or skills listing is below
// the minimum length for a meaningful analysis.
type InputTooShortError struct {
	Purpose  string
	MinChars int
	Got      int
}

func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("input too short for %s: need at least %d characters, got %d",
		e.Purpose, e.MinChars, e.Got)
}

// UnsupportedFormatError is returned for file extensions the decoder does not
// handle.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (supported: .pdf, .docx, .txt, .md)", e.Ext)
}

// DecodeError represents a failure decoding a structured document format.
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Format)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
