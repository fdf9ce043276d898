package content

import "fmt"

// UnknownPageError is returned for a page identifier the source does not
// know. Callers drawing identifiers from the catalog treat it as a bug.
type UnknownPageError struct {
	PageID string
}

func (e *UnknownPageError) Error() string {
	return fmt.Sprintf("unknown page %q", e.PageID)
}

// SourceError reports a failed fetch or an undecodable page.
type SourceError struct {
	PageID string
	Op     string // "fetch" or "decode"
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s page %q: %v", e.Op, e.PageID, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SourceError) Unwrap() error {
	return e.Err
}
