package apperrors

import "errors"

// Error kinds for the upload and query pipelines. Handlers map these to HTTP
// status codes with errors.Is; everything else bubbles up as a 500.
var (
	ErrNoFile            = errors.New("no file provided")
	ErrMalformedInput    = errors.New("spreadsheet has no data rows")
	ErrInsertFailure     = errors.New("insert failed")
	ErrGenerationFailure = errors.New("sql generation failed")
	ErrUnsafeQuery       = errors.New("unsafe query rejected")
	ErrQueryFailure      = errors.New("query execution failed")
)
