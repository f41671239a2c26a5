// Package inventoryhdl xử lý các request phiếu nhập kho.
package inventoryhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/paulaperez14/hardventory/internal/api/auth/models"
	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	inventorydto "github.com/paulaperez14/hardventory/internal/api/inventory/dto"
	models "github.com/paulaperez14/hardventory/internal/api/inventory/models"
	inventorysvc "github.com/paulaperez14/hardventory/internal/api/inventory/service"
	"github.com/paulaperez14/hardventory/internal/common"
)

// GoodsReceiptHandler xử lý các request liên quan đến phiếu nhập kho
type GoodsReceiptHandler struct {
	*basehdl.BaseHandler[models.GoodsReceipt, inventorydto.GoodsReceiptCreateInput, inventorydto.GoodsReceiptCreateInput]
	receiptService *inventorysvc.GoodsReceiptService
}

// NewGoodsReceiptHandler tạo instance mới của GoodsReceiptHandler
func NewGoodsReceiptHandler() (*GoodsReceiptHandler, error) {
	receiptService, err := inventorysvc.NewGoodsReceiptService()
	if err != nil {
		return nil, fmt.Errorf("failed to create goods receipt service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.GoodsReceipt, inventorydto.GoodsReceiptCreateInput, inventorydto.GoodsReceiptCreateInput](receiptService.BaseServiceMongoImpl)

	return &GoodsReceiptHandler{
		BaseHandler:    baseHandler,
		receiptService: receiptService,
	}, nil
}

// InsertOne override tạo phiếu nhập kho: chạy trong transaction
// (ghi phiếu + cộng tồn kho) thay vì insert document đơn thuần.
func (h *GoodsReceiptHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input inventorydto.GoodsReceiptCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Thông tin người ghi nhận lấy từ context (AuthMiddleware set)
		var userID primitive.ObjectID
		var userName string
		if user, ok := c.Locals("user").(authmodels.User); ok {
			userID = user.ID
			userName = user.Name
		}

		receipt, err := h.receiptService.RegisterReceipt(c.Context(), &input, userID, userName)
		h.HandleResponse(c, receipt, err)
		return nil
	})
}

// Find override danh sách phiếu nhập: mặc định sắp xếp theo receiptDate giảm dần
func (h *GoodsReceiptHandler) Find(c fiber.Ctx) error {
	if c.Query("sort") == "" {
		// Chỉ set mặc định khi client không yêu cầu sort khác
		q := c.Request().URI().QueryArgs()
		q.Set("sort", `{"receiptDate":-1}`)
	}
	return h.BaseHandler.Find(c)
}
