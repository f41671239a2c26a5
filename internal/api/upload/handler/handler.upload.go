// Package uploadhdl xử lý request xin presigned URL upload ảnh sản phẩm.
package uploadhdl

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	uploaddto "github.com/paulaperez14/hardventory/internal/api/upload/dto"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// UploadHandler xử lý các request upload
type UploadHandler struct{}

// NewUploadHandler tạo instance mới của UploadHandler
func NewUploadHandler() (*UploadHandler, error) {
	return &UploadHandler{}, nil
}

// HandlePresign cấp presigned PUT URL cho client tự upload ảnh lên S3.
// Key object dạng products/<uuid>-<filename> để tránh ghi đè giữa các file trùng tên.
func (h *UploadHandler) HandlePresign(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input uploaddto.PresignInput
		if err := json.Unmarshal(c.Body(), &input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}
		if global.Validate != nil {
			if err := global.Validate.Struct(&input); err != nil {
				if _, ok := err.(validator.ValidationErrors); ok {
					basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu filename hoặc contentType", common.StatusBadRequest, err.Error()))
					return nil
				}
				basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
				return nil
			}
		}

		bucket := global.ServerConfig.S3_Bucket
		region := global.ServerConfig.S3_Region
		if bucket == "" || region == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"S3 chưa được cấu hình (thiếu bucket hoặc region)",
				common.StatusInternalServerError,
				nil,
			))
			return nil
		}

		key := fmt.Sprintf("products/%s-%s", uuid.NewString(), input.Filename)
		expiry := time.Duration(global.ServerConfig.S3_PresignExpiry) * time.Second

		uploadURL, err := utility.PresignPutObject(c.Context(), bucket, key, input.ContentType, expiry)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeExternalService,
				"Lỗi khi tạo presigned URL",
				common.StatusInternalServerError,
				err.Error(),
			))
			return nil
		}

		basehdl.HandleResponse(c, uploaddto.PresignResult{
			UploadURL: uploadURL,
			PublicURL: utility.PublicObjectURL(bucket, region, key),
			ObjectKey: key,
		}, nil)
		return nil
	})
}
