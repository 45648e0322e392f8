//go:build unit

package patch_test

import (
	"testing"

	"court-slot-engine/internal/pkg/patch"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	window := 0
	assert.Equal(t, 0, patch.Coalesce(&window, 24), "explicit zero wins")
	assert.Equal(t, 24, patch.Coalesce[int](nil, 24))

	refund := decimal.NewFromInt(80)
	assert.True(t, refund.Equal(patch.Coalesce(&refund, decimal.NewFromInt(50))))
}
