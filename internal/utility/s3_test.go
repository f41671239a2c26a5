package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractObjectKey(t *testing.T) {
	bucket := "hardventory-images"
	region := "us-east-1"

	t.Run("EXTRACT - URL hợp lệ trả về key", func(t *testing.T) {
		url := "https://hardventory-images.s3.us-east-1.amazonaws.com/products/abc-hammer.jpg"
		key, ok := ExtractObjectKey(url, bucket, region)
		assert.True(t, ok)
		assert.Equal(t, "products/abc-hammer.jpg", key)
	})

	t.Run("EXTRACT - URL khác bucket bị bỏ qua", func(t *testing.T) {
		url := "https://other-bucket.s3.us-east-1.amazonaws.com/products/abc.jpg"
		_, ok := ExtractObjectKey(url, bucket, region)
		assert.False(t, ok)
	})

	t.Run("EXTRACT - URL khác region bị bỏ qua", func(t *testing.T) {
		url := "https://hardventory-images.s3.eu-west-1.amazonaws.com/products/abc.jpg"
		_, ok := ExtractObjectKey(url, bucket, region)
		assert.False(t, ok)
	})

	t.Run("EXTRACT - Key rỗng bị bỏ qua", func(t *testing.T) {
		url := "https://hardventory-images.s3.us-east-1.amazonaws.com/"
		_, ok := ExtractObjectKey(url, bucket, region)
		assert.False(t, ok)
	})

	t.Run("EXTRACT - URL rỗng bị bỏ qua", func(t *testing.T) {
		_, ok := ExtractObjectKey("", bucket, region)
		assert.False(t, ok)
	})
}

func TestPublicObjectURL(t *testing.T) {
	url := PublicObjectURL("hardventory-images", "us-east-1", "products/x.png")
	assert.Equal(t, "https://hardventory-images.s3.us-east-1.amazonaws.com/products/x.png", url)
}
