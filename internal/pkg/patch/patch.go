// Package patch applies partial updates where a nil pointer means "keep the current value".
package patch

func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}
