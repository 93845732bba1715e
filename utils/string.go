package utils

import "strings"

// TrimAll trims every string pointed to.
func TrimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// NilIfEmpty turns a pointer to a blank string into nil.
func NilIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
