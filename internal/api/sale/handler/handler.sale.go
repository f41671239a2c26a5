// Package salehdl xử lý các request bán hàng tại điểm bán.
package salehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/paulaperez14/hardventory/internal/api/auth/models"
	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	saledto "github.com/paulaperez14/hardventory/internal/api/sale/dto"
	models "github.com/paulaperez14/hardventory/internal/api/sale/models"
	salesvc "github.com/paulaperez14/hardventory/internal/api/sale/service"
	"github.com/paulaperez14/hardventory/internal/common"
)

// SaleHandler xử lý các request liên quan đến đơn bán hàng
type SaleHandler struct {
	*basehdl.BaseHandler[models.Sale, saledto.SaleCreateInput, saledto.SaleCreateInput]
	saleService *salesvc.SaleService
}

// NewSaleHandler tạo instance mới của SaleHandler
func NewSaleHandler() (*SaleHandler, error) {
	saleService, err := salesvc.NewSaleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sale service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Sale, saledto.SaleCreateInput, saledto.SaleCreateInput](saleService.BaseServiceMongoImpl)

	return &SaleHandler{
		BaseHandler: baseHandler,
		saleService: saleService,
	}, nil
}

// InsertOne override chốt đơn bán hàng: chạy Checkout trong transaction
// (ghi đơn + trừ kho toàn bộ dòng hàng) thay vì insert document đơn thuần.
func (h *SaleHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input saledto.SaleCreateInput
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

		var sellerID primitive.ObjectID
		var sellerName string
		if user, ok := c.Locals("user").(authmodels.User); ok {
			sellerID = user.ID
			sellerName = user.Name
		}

		sale, err := h.saleService.Checkout(c.Context(), &input, sellerID, sellerName)
		h.HandleResponse(c, sale, err)
		return nil
	})
}

// Find override danh sách đơn bán: mặc định sắp xếp theo saleDate giảm dần
func (h *SaleHandler) Find(c fiber.Ctx) error {
	if c.Query("sort") == "" {
		q := c.Request().URI().QueryArgs()
		q.Set("sort", `{"saleDate":-1}`)
	}
	return h.BaseHandler.Find(c)
}
