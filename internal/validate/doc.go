// Package validate checks user-supplied identifiers before they reach the
// index.
//
// Validation is minimal. Clearly malformed input (null bytes, directory
// components, excessive length) is rejected; anything else is passed to the
// index, which decides whether it exists.
//
// All validation errors wrap a sentinel from errors.go. Use errors.Is():
//
//	if errors.Is(err, validate.ErrInvalidFileName) {
//	    // handle invalid name
//	}
package validate
