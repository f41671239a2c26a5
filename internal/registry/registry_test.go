package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Run("REGISTER - Đăng ký item mới", func(t *testing.T) {
		r := NewRegistry[string]()
		isNew, err := r.Register("products", "collection-products")
		assert.NoError(t, err)
		assert.True(t, isNew)

		value, exists := r.Get("products")
		assert.True(t, exists)
		assert.Equal(t, "collection-products", value)
	})

	t.Run("REGISTER - Ghi đè item cũ", func(t *testing.T) {
		r := NewRegistry[int]()
		r.Register("counter", 1)
		isNew, err := r.Register("counter", 2)
		assert.NoError(t, err)
		assert.False(t, isNew)

		value, _ := r.Get("counter")
		assert.Equal(t, 2, value)
	})

	t.Run("REGISTER - Tên rỗng trả về lỗi", func(t *testing.T) {
		r := NewRegistry[string]()
		_, err := r.Register("", "value")
		assert.Error(t, err)
	})

	t.Run("GET - Item không tồn tại", func(t *testing.T) {
		r := NewRegistry[string]()
		_, exists := r.Get("missing")
		assert.False(t, exists)
	})

	t.Run("REMOVE - Xóa item", func(t *testing.T) {
		r := NewRegistry[string]()
		r.Register("sales", "collection-sales")
		r.Remove("sales")
		_, exists := r.Get("sales")
		assert.False(t, exists)
		assert.Equal(t, 0, r.Count())
	})

	t.Run("CONCURRENT - Truy cập đồng thời an toàn", func(t *testing.T) {
		r := NewRegistry[int]()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				r.Register("shared", n)
				r.Get("shared")
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 1, r.Count())
	})
}
