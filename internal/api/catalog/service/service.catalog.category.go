package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	models "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục sản phẩm
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
	productService *basesvc.BaseServiceMongoImpl[models.Product]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
		productService:       basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// DeleteCategory xóa danh mục, chặn khi còn sản phẩm tham chiếu tới nó
func (s *CategoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	inUse, err := s.productService.DocumentExists(ctx, bson.M{"categoryId": id})
	if err != nil {
		return err
	}
	if inUse {
		return common.ErrCategoryInUse
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
