// Package uploaddto chứa DTO cho domain upload ảnh.
package uploaddto

// PresignInput đầu vào xin presigned URL để upload ảnh sản phẩm
type PresignInput struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// PresignResult kết quả presign: URL để PUT file và URL công khai của object
type PresignResult struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	ObjectKey string `json:"objectKey"`
}
