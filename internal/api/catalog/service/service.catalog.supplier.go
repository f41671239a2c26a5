package catalogsvc

import (
	"fmt"

	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	models "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
)

// SupplierService là cấu trúc chứa các phương thức liên quan đến nhà cung cấp
type SupplierService struct {
	*basesvc.BaseServiceMongoImpl[models.Supplier]
}

// NewSupplierService tạo mới SupplierService
func NewSupplierService() (*SupplierService, error) {
	supplierCollection, exist := global.RegistryCollections.Get(global.ColNames.Suppliers)
	if !exist {
		return nil, fmt.Errorf("failed to get suppliers collection: %v", common.ErrNotFound)
	}
	return &SupplierService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Supplier](supplierCollection),
	}, nil
}
