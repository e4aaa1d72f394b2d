package errors

import (
	"strings"
	"unicode"
)

// MaxLabelLength bounds item labels. Labels are rendered inline, so anything
// longer than a terminal line is rejected.
const MaxLabelLength = 256

// ValidateLabel validates an item label.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only labels
//   - No control characters (labels are drawn on a single line)
//   - Maximum length of MaxLabelLength bytes
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(label) > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateWidth validates an item width in layout units.
func ValidateWidth(width int) error {
	if width <= 0 {
		return New(ErrCodeInvalidWidth, "width must be positive, got %d", width)
	}
	return nil
}

// ValidateItemID validates a host-supplied item handle.
// An empty ID is allowed and means "generate one".
func ValidateItemID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) > MaxLabelLength {
		return New(ErrCodeInvalidInput, "item id too long (max %d characters)", MaxLabelLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) || r == '/' {
			return New(ErrCodeInvalidInput, "item id contains invalid characters: %q", id)
		}
	}
	return nil
}
