package errors

import (
	"strings"
	"unicode"
)

// maxDocumentName bounds document names so "<name>.<format>" stays within
// common filesystem limits.
const maxDocumentName = 250

// ValidateDocumentName validates a name used as the base of an output file.
// Puzzle folder names become document names, so the rules are conservative:
//   - No empty names, "." or ".."
//   - No control characters or null bytes
//   - No path separators (forward or backslash)
//   - Maximum length of 250 bytes
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "document name cannot be empty")
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidConfig, "document name cannot be %q", name)
	}
	if len(name) > maxDocumentName {
		return New(ErrCodeInvalidConfig, "document name too long (max %d characters)", maxDocumentName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "document name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidConfig, "document name cannot contain path separators: %q", name)
	}

	return nil
}
