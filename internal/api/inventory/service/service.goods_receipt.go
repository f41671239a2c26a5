// Package inventorysvc - service phiếu nhập kho.
package inventorysvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	catalogmodels "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	inventorydto "github.com/paulaperez14/hardventory/internal/api/inventory/dto"
	models "github.com/paulaperez14/hardventory/internal/api/inventory/models"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// GoodsReceiptService là cấu trúc chứa các phương thức liên quan đến phiếu nhập kho
type GoodsReceiptService struct {
	*basesvc.BaseServiceMongoImpl[models.GoodsReceipt]
	productService  *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	supplierService *basesvc.BaseServiceMongoImpl[catalogmodels.Supplier]
}

// NewGoodsReceiptService tạo mới GoodsReceiptService
func NewGoodsReceiptService() (*GoodsReceiptService, error) {
	receiptCollection, exist := global.RegistryCollections.Get(global.ColNames.GoodsReceipts)
	if !exist {
		return nil, fmt.Errorf("failed to get goods_receipts collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	supplierCollection, exist := global.RegistryCollections.Get(global.ColNames.Suppliers)
	if !exist {
		return nil, fmt.Errorf("failed to get suppliers collection: %v", common.ErrNotFound)
	}
	return &GoodsReceiptService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.GoodsReceipt](receiptCollection),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productCollection),
		supplierService:      basesvc.NewBaseServiceMongo[catalogmodels.Supplier](supplierCollection),
	}, nil
}

// RegisterReceipt đăng ký phiếu nhập kho: ghi phiếu và cộng tồn kho trong
// cùng một transaction MongoDB — hoặc cả hai cùng thấy, hoặc không gì cả.
// Nhà cung cấp không bắt buộc; nếu không tìm thấy thì bỏ qua tên denormalize.
func (s *GoodsReceiptService) RegisterReceipt(ctx context.Context, input *inventorydto.GoodsReceiptCreateInput, userID primitive.ObjectID, userName string) (*models.GoodsReceipt, error) {
	if input.QuantityReceived <= 0 {
		return nil, common.ErrInvalidQuantity
	}
	productID := utility.String2ObjectID(input.ProductID)
	if productID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationFormat, "productId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
	}

	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Sản phẩm phải tồn tại, nếu không thì hủy toàn bộ
		product, err := s.productService.FindOneById(sc, productID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.NewError(common.ErrCodeBusinessOperation, "Sản phẩm không tồn tại", common.StatusNotFound, nil)
			}
			return nil, err
		}

		receipt := models.GoodsReceipt{
			ProductID:        productID,
			ProductName:      product.Name,
			QuantityReceived: input.QuantityReceived,
			InvoiceNumber:    input.InvoiceNumber,
			ReceiptDate:      input.ReceiptDate,
			RecordedAt:       time.Now().UnixMilli(),
			UserID:           userID,
			UserName:         userName,
		}
		if receipt.ReceiptDate == 0 {
			receipt.ReceiptDate = receipt.RecordedAt
		}

		// Nhà cung cấp tùy chọn; không tìm thấy thì chỉ log
		if input.SupplierID != "" {
			supplierID := utility.String2ObjectID(input.SupplierID)
			if !supplierID.IsZero() {
				if supplier, supErr := s.supplierService.FindOneById(sc, supplierID); supErr == nil {
					receipt.SupplierID = supplier.ID
					receipt.SupplierName = supplier.Name
				} else {
					logrus.WithFields(logrus.Fields{
						"supplier_id": input.SupplierID,
					}).Warn("RegisterReceipt: Không tìm thấy nhà cung cấp, bỏ qua tên denormalize")
				}
			}
		}

		created, err := s.BaseServiceMongoImpl.InsertOne(sc, receipt)
		if err != nil {
			return nil, err
		}

		// Cộng tồn kho cho sản phẩm
		if _, err := s.productService.UpdateById(sc, productID, &basesvc.UpdateData{
			Inc: map[string]interface{}{"quantity": input.QuantityReceived},
		}); err != nil {
			return nil, err
		}

		return created, nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": input.ProductID,
			"quantity":   input.QuantityReceived,
			"error":      err.Error(),
		}).Error("RegisterReceipt: Transaction thất bại")
		return nil, err
	}

	receipt := result.(models.GoodsReceipt)
	logrus.WithFields(logrus.Fields{
		"receipt_id": receipt.ID.Hex(),
		"product_id": receipt.ProductID.Hex(),
		"quantity":   receipt.QuantityReceived,
	}).Info("RegisterReceipt: Đăng ký phiếu nhập kho thành công")
	return &receipt, nil
}
