package utility

import (
	"context"
	"fmt"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	s3Client        *s3.Client
	s3PresignClient *s3.PresignClient
)

// InitS3 khởi tạo S3 client cho việc quản lý ảnh sản phẩm.
// Credentials lấy từ chuỗi credentials mặc định của AWS SDK (env vars, shared config).
func InitS3(ctx context.Context, region string) error {
	if region == "" {
		return fmt.Errorf("aws region is empty")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	s3PresignClient = s3.NewPresignClient(s3Client)
	return nil
}

// PresignPutObject tạo URL pre-signed cho phép client PUT object trực tiếp lên S3.
func PresignPutObject(ctx context.Context, bucket, key, contentType string, expiry time.Duration) (string, error) {
	if s3PresignClient == nil {
		return "", fmt.Errorf("s3 client not initialized")
	}

	req, err := s3PresignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign put object: %w", err)
	}
	return req.URL, nil
}

// DeleteObject xóa object khỏi S3
func DeleteObject(ctx context.Context, bucket, key string) error {
	if s3Client == nil {
		return fmt.Errorf("s3 client not initialized")
	}

	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete s3 object %s: %w", key, err)
	}
	return nil
}

// PublicObjectURL trả về URL công khai của object trong bucket
func PublicObjectURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// ExtractObjectKey trích xuất object key từ URL ảnh nếu URL thuộc bucket/region đã cấu hình.
// Trả về ("", false) khi URL không khớp prefix mong đợi hoặc key rỗng.
func ExtractObjectKey(imageURL, bucket, region string) (string, bool) {
	if imageURL == "" || bucket == "" || region == "" {
		return "", false
	}

	expectedPrefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region)
	if !strings.HasPrefix(imageURL, expectedPrefix) {
		return "", false
	}

	key := strings.TrimPrefix(imageURL, expectedPrefix)
	if strings.TrimSpace(key) == "" {
		return "", false
	}
	return key, true
}
