// Package cataloghdl xử lý các request CRUD cho domain catalog.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	catalogdto "github.com/paulaperez14/hardventory/internal/api/catalog/dto"
	models "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	catalogsvc "github.com/paulaperez14/hardventory/internal/api/catalog/service"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService.BaseServiceMongoImpl)
	baseHandler.TransformCreate = transformProductCreate
	baseHandler.TransformUpdate = transformProductUpdate

	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

func transformProductCreate(input *catalogdto.ProductCreateInput) (*models.Product, error) {
	categoryID := utility.String2ObjectID(input.CategoryID)
	if categoryID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "categoryId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
	}

	product := &models.Product{
		Name:              input.Name,
		Description:       input.Description,
		Specifications:    input.Specifications,
		Price:             input.Price,
		CategoryID:        categoryID,
		Quantity:          input.Quantity,
		LowStockThreshold: models.DefaultLowStockThreshold,
		ImageURL:          input.ImageURL,
	}
	if input.SupplierID != "" {
		supplierID := utility.String2ObjectID(input.SupplierID)
		if supplierID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, "supplierId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
		}
		product.SupplierID = supplierID
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	return product, nil
}

func transformProductUpdate(input *catalogdto.ProductUpdateInput) (*basesvc.UpdateData, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Specifications != nil {
		set["specifications"] = *input.Specifications
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.CategoryID != "" {
		categoryID := utility.String2ObjectID(input.CategoryID)
		if categoryID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, "categoryId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
		}
		set["categoryId"] = categoryID
	}
	if input.SupplierID != "" {
		supplierID := utility.String2ObjectID(input.SupplierID)
		if supplierID.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationFormat, "supplierId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
		}
		set["supplierId"] = supplierID
	}
	if input.LowStockThreshold != nil {
		set["lowStockThreshold"] = *input.LowStockThreshold
	}
	if input.ImageURL != nil {
		set["imageUrl"] = *input.ImageURL
	}
	// Lưu ý: quantity không sửa trực tiếp qua update; chỉ thay đổi qua
	// phiếu nhập kho hoặc chốt đơn bán.
	return &basesvc.UpdateData{Set: set}, nil
}

// DeleteById override xóa sản phẩm: dọn dẹp ảnh S3 trước khi xóa document
func (h *ProductHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}
		err := h.productService.DeleteProduct(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleFindLowStock trả về danh sách sản phẩm dưới ngưỡng tồn kho thấp
func (h *ProductHandler) HandleFindLowStock(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		products, err := h.productService.FindLowStock(c.Context())
		h.HandleResponse(c, products, err)
		return nil
	})
}
