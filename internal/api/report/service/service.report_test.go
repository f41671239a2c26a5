package reportsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	t.Run("Khoảng ngày hợp lệ, ngày kết thúc nới tới cuối ngày", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-08-01", "2026-08-15")

		assert.NoError(t, err)
		fromTime := time.UnixMilli(from).UTC()
		toTime := time.UnixMilli(to).UTC()
		assert.Equal(t, "2026-08-01T00:00:00", fromTime.Format("2006-01-02T15:04:05"))
		assert.Equal(t, "2026-08-15T23:59:59", toTime.Format("2006-01-02T15:04:05"))
		assert.Equal(t, 999, toTime.Nanosecond()/1e6)
	})

	t.Run("Cùng một ngày bao trọn cả ngày đó", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-08-29", "2026-08-29")

		assert.NoError(t, err)
		assert.Equal(t, int64(24*60*60*1000-1), to-from)
	})

	t.Run("Thiếu tham số trả về lỗi validation", func(t *testing.T) {
		_, _, err := ParseDateRange("", "2026-08-15")
		assert.Error(t, err)

		_, _, err = ParseDateRange("2026-08-01", "")
		assert.Error(t, err)
	})

	t.Run("Định dạng ngày sai trả về lỗi", func(t *testing.T) {
		_, _, err := ParseDateRange("01/08/2026", "2026-08-15")
		assert.Error(t, err)

		_, _, err = ParseDateRange("2026-08-01", "15-08-2026")
		assert.Error(t, err)
	})

	t.Run("Ngày kết thúc sớm hơn ngày bắt đầu bị từ chối", func(t *testing.T) {
		_, _, err := ParseDateRange("2026-08-15", "2026-08-01")
		assert.Error(t, err)
	})
}
