package kernel

import "strings"

// PhoneNumber is a value object pairing a raw contact number with its
// canonical normalized form. The normalized form is always derived from the
// raw number at construction time and is never set independently.
//
// An empty raw number produces an empty PhoneNumber; structural completeness
// is checked at the order level, not here, because a missing phone is a
// data-completeness issue rather than a malformed value.
//
// Example:
//
//	phone := kernel.NewPhoneNumber("012-345 6495")
//	fmt.Println(phone.Normalized()) // Output: 0123456495
type PhoneNumber struct {
	raw        string
	normalized string
}

// NewPhoneNumber creates a PhoneNumber, deriving the normalized form from raw.
func NewPhoneNumber(raw string) PhoneNumber {
	return PhoneNumber{
		raw:        raw,
		normalized: NormalizePhoneNumber(raw),
	}
}

// Raw returns the number as supplied by the caller.
func (p PhoneNumber) Raw() string {
	return p.raw
}

// Normalized returns the canonical comparable form of the number.
func (p PhoneNumber) Normalized() string {
	return p.normalized
}

// IsZero reports whether the number is empty after normalization.
func (p PhoneNumber) IsZero() bool {
	return p.normalized == ""
}

// NormalizePhoneNumber canonicalizes a phone number string into a comparable
// form: whitespace, separators and grouping characters are dropped, digits are
// kept, and a single leading plus sign is preserved. The function is
// idempotent: normalizing an already-normalized number returns it unchanged.
func NormalizePhoneNumber(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(trimmed))
	for i, r := range trimmed {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}

	return b.String()
}
