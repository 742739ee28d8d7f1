package profile

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/errors"
)

// MaxNameLength bounds profile names, which double as file names
const MaxNameLength = 100

var invalidNameChars = []rune{'<', '>', ':', '"', '|', '?', '*', 0}

// ValidateName checks that name is safe to use as a file name stem.
// Names may not start with '.', which also keeps them clear of the binding record.
func ValidateName(name string) error {
	if name == "" {
		return validationError("Profile name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return validationError(fmt.Sprintf("Profile name too long (max %d characters)", MaxNameLength))
	}

	if strings.HasPrefix(name, ".") {
		return validationError("Profile name cannot start with '.'")
	}

	if strings.ContainsAny(name, `/\`) {
		return validationError("Profile name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return validationError("Profile name cannot contain '..'")
	}

	for _, c := range invalidNameChars {
		if strings.ContainsRune(name, c) {
			return validationError(fmt.Sprintf("Profile name contains invalid character: %q", c))
		}
	}

	return nil
}

func validationError(msg string) error {
	return errors.New(errors.ErrValidation, msg)
}
