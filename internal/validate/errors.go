// errors.go defines sentinel errors for validation failures.

package validate

import "errors"

var (
	ErrInvalidFileName = errors.New("invalid ruling file name")
	ErrFileNameTooLong = errors.New("ruling file name too long")
)
