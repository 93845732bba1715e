package utils

func Ptr[T any](v T) *T {
	return &v
}

// NilIfZero turns a pointer to the zero value into nil.
func NilIfZero[T comparable](p *T) *T {
	var zero T
	if p == nil || *p == zero {
		return nil
	}
	return p
}
