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

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService.BaseServiceMongoImpl)
	baseHandler.TransformCreate = func(input *catalogdto.CategoryCreateInput) (*models.Category, error) {
		return &models.Category{
			Name:        input.Name,
			Description: input.Description,
		}, nil
	}
	baseHandler.TransformUpdate = func(input *catalogdto.CategoryUpdateInput) (*basesvc.UpdateData, error) {
		set := map[string]interface{}{}
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.Description != nil {
			set["description"] = *input.Description
		}
		return &basesvc.UpdateData{Set: set}, nil
	}

	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// DeleteById override xóa danh mục: chặn khi còn sản phẩm tham chiếu
func (h *CategoryHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}
		err := h.categoryService.DeleteCategory(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
