package rule

import "errors"

var (
	// ErrInvalidCode indicates a code outside [0, k^(k^(2r+1))).
	ErrInvalidCode = errors.New("rule: code out of range")
	// ErrInvalidParams indicates an unsupported number of states or radius.
	ErrInvalidParams = errors.New("rule: invalid states or radius")
)
