// Package salesvc - service chốt đơn bán hàng.
package salesvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	catalogmodels "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	saledto "github.com/paulaperez14/hardventory/internal/api/sale/dto"
	models "github.com/paulaperez14/hardventory/internal/api/sale/models"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// SaleService là cấu trúc chứa các phương thức liên quan đến đơn bán hàng
type SaleService struct {
	*basesvc.BaseServiceMongoImpl[models.Sale]
	productService *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewSaleService tạo mới SaleService
func NewSaleService() (*SaleService, error) {
	saleCollection, exist := global.RegistryCollections.Get(global.ColNames.Sales)
	if !exist {
		return nil, fmt.Errorf("failed to get sales collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &SaleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Sale](saleCollection),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productCollection),
	}, nil
}

// Checkout chốt đơn bán hàng trong MỘT transaction MongoDB:
// đọc tất cả sản phẩm, kiểm tra đủ tồn kho cho từng dòng, ghi đơn và
// trừ kho tất cả các dòng cùng lúc. Bất kỳ dòng nào thiếu hàng hoặc
// sản phẩm không tồn tại thì hủy toàn bộ — không có đơn, không trừ kho.
func (s *SaleService) Checkout(ctx context.Context, input *saledto.SaleCreateInput, sellerID primitive.ObjectID, sellerName string) (*models.Sale, error) {
	if input == nil || len(input.Items) == 0 {
		return nil, common.ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, common.ErrInvalidQuantity
		}
	}

	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Đọc và kiểm tra toàn bộ sản phẩm trước khi ghi bất cứ thứ gì
		snapshots := make([]models.CartItem, 0, len(input.Items))
		var grandTotal float64
		for _, item := range input.Items {
			productID := utility.String2ObjectID(item.ProductID)
			if productID.IsZero() {
				return nil, common.NewError(common.ErrCodeValidationFormat, "productId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
			}

			product, err := s.productService.FindOneById(sc, productID)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return nil, common.NewError(
						common.ErrCodeBusinessOperation,
						fmt.Sprintf("Sản phẩm '%s' không tồn tại", item.ProductID),
						common.StatusNotFound,
						nil,
					)
				}
				return nil, err
			}
			if product.Quantity < item.Quantity {
				return nil, common.NewError(
					common.ErrCodeBusinessOperation,
					fmt.Sprintf("Không đủ tồn kho cho sản phẩm '%s' (còn %d, yêu cầu %d)", product.Name, product.Quantity, item.Quantity),
					common.StatusBadRequest,
					nil,
				)
			}

			subtotal := float64(item.Quantity) * product.Price
			snapshots = append(snapshots, models.CartItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				Subtotal:    subtotal,
			})
			grandTotal += subtotal
		}

		sale := models.Sale{
			Items:      snapshots,
			GrandTotal: grandTotal,
			SaleDate:   time.Now().UnixMilli(),
			SellerID:   sellerID,
			SellerName: sellerName,
		}
		created, err := s.BaseServiceMongoImpl.InsertOne(sc, sale)
		if err != nil {
			return nil, err
		}

		// Trừ kho từng dòng; tất cả nằm trong cùng transaction
		for _, item := range snapshots {
			if _, err := s.productService.UpdateById(sc, item.ProductID, &basesvc.UpdateData{
				Inc: map[string]interface{}{"quantity": -item.Quantity},
			}); err != nil {
				return nil, err
			}
		}

		return created, nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"item_count": len(input.Items),
			"error":      err.Error(),
		}).Warn("Checkout: Chốt đơn thất bại, transaction đã hủy")
		return nil, err
	}

	sale := result.(models.Sale)
	logrus.WithFields(logrus.Fields{
		"sale_id":     sale.ID.Hex(),
		"grand_total": sale.GrandTotal,
		"item_count":  len(sale.Items),
	}).Info("Checkout: Chốt đơn bán hàng thành công")
	return &sale, nil
}

// FindByDateRange tìm các đơn bán trong khoảng [from, to] (Unix milli),
// sắp xếp theo saleDate giảm dần. Dùng cho báo cáo.
func (s *SaleService) FindByDateRange(ctx context.Context, from, to int64) ([]models.Sale, error) {
	filter := bson.M{
		"saleDate": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "saleDate", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}
