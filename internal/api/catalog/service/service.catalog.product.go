// Package catalogsvc - các service cho domain catalog.
package catalogsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	models "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// FindLowStock tìm các sản phẩm đang dưới ngưỡng tồn kho thấp.
// Lọc phía server bằng $expr để so sánh hai field của cùng document.
func (s *ProductService) FindLowStock(ctx context.Context) ([]models.Product, error) {
	filter := bson.M{
		"$expr": bson.M{
			"$lt": bson.A{"$quantity", "$lowStockThreshold"},
		},
	}
	return s.BaseServiceMongoImpl.Find(ctx, filter, nil)
}

// DeleteProduct xóa sản phẩm và dọn dẹp ảnh trên S3 nếu có.
// Chỉ xóa object khi imageUrl khớp đúng prefix bucket/region đã cấu hình;
// lỗi S3 chỉ được log, việc xóa document vẫn tiếp tục.
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	product, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if product.ImageURL != "" && global.ServerConfig != nil {
		bucket := global.ServerConfig.S3_Bucket
		region := global.ServerConfig.S3_Region
		if key, ok := utility.ExtractObjectKey(product.ImageURL, bucket, region); ok {
			if err := utility.DeleteObject(ctx, bucket, key); err != nil {
				logrus.WithFields(logrus.Fields{
					"product_id": id.Hex(),
					"object_key": key,
					"error":      err.Error(),
				}).Warn("DeleteProduct: Lỗi khi xóa ảnh trên S3, vẫn tiếp tục xóa sản phẩm")
			}
		}
	}

	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
