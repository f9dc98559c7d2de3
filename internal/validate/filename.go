package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxFileName bounds the length of a ruling file name in bytes.
const MaxFileName = 255

// FileName validates a ruling file name as stored in the nome_arquivo
// column and returns it with surrounding whitespace removed.
//
// Validation rules:
//   - Empty or whitespace-only names rejected
//   - Null bytes and other control characters rejected
//   - Path separators rejected (names are bare file names)
//   - Names longer than MaxFileName rejected
func FileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidFileName)
	}
	if len(name) > MaxFileName {
		return "", ErrFileNameTooLong
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidFileName, name)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: %q contains a control character", ErrInvalidFileName, name)
	}
	return name, nil
}
