package catalogmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductIsLowStock(t *testing.T) {
	t.Run("Số lượng dưới ngưỡng là tồn kho thấp", func(t *testing.T) {
		p := Product{Quantity: 3, LowStockThreshold: 5}
		assert.True(t, p.IsLowStock())
	})

	t.Run("Số lượng bằng ngưỡng chưa coi là thấp", func(t *testing.T) {
		p := Product{Quantity: 5, LowStockThreshold: 5}
		assert.False(t, p.IsLowStock())
	})

	t.Run("Số lượng trên ngưỡng không thấp", func(t *testing.T) {
		p := Product{Quantity: 10, LowStockThreshold: 5}
		assert.False(t, p.IsLowStock())
	})

	t.Run("Hết hàng với ngưỡng dương là tồn kho thấp", func(t *testing.T) {
		p := Product{Quantity: 0, LowStockThreshold: 1}
		assert.True(t, p.IsLowStock())
	})

	t.Run("Ngưỡng 0 thì không bao giờ cảnh báo", func(t *testing.T) {
		p := Product{Quantity: 0, LowStockThreshold: 0}
		assert.False(t, p.IsLowStock())
	})
}
