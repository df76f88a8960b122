package errors

import "errors"

// ErrDuplicateKey maps a storage-layer unique violation. The registration
// flow relies on it to report "already registered" even when two requests
// race past the pre-insert existence check.
var ErrDuplicateKey = errors.New("record already exists")
