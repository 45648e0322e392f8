package response

import (
	"github.com/jinzhu/copier"
)

// copyAs maps a read view onto its response type by field name.
func copyAs[T any](src any) (T, error) {
	var dst T
	err := copier.Copy(&dst, src)
	return dst, err
}
