package domain

import "strings"

// OptionalString trims s and returns nil when nothing is left, so empty
// optional fields are stored as NULL.
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// StrOrEmpty dereferences s, returning "" for nil.
func StrOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
