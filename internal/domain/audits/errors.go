package audits

import "errors"

// ErrInvalidURL indicates the request URL could not be normalized.
var ErrInvalidURL = errors.New("invalid url")

// ErrAuditRunFailed indicates the browser automation environment could not
// produce a usable report.
var ErrAuditRunFailed = errors.New("audit run failed")

// ErrNotFound indicates no stored report exists for the requested key.
var ErrNotFound = errors.New("report not found")
