package reporting

import "errors"

// ErrMalformedDate marks date text that cannot be parsed into a DateKey.
var ErrMalformedDate = errors.New("reporting: malformed date")
