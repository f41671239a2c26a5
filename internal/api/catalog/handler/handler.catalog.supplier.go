package cataloghdl

import (
	"fmt"

	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	catalogdto "github.com/paulaperez14/hardventory/internal/api/catalog/dto"
	models "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	catalogsvc "github.com/paulaperez14/hardventory/internal/api/catalog/service"
)

// SupplierHandler xử lý các request liên quan đến nhà cung cấp
type SupplierHandler struct {
	*basehdl.BaseHandler[models.Supplier, catalogdto.SupplierCreateInput, catalogdto.SupplierUpdateInput]
	supplierService *catalogsvc.SupplierService
}

// NewSupplierHandler tạo instance mới của SupplierHandler
func NewSupplierHandler() (*SupplierHandler, error) {
	supplierService, err := catalogsvc.NewSupplierService()
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Supplier, catalogdto.SupplierCreateInput, catalogdto.SupplierUpdateInput](supplierService.BaseServiceMongoImpl)
	baseHandler.TransformCreate = func(input *catalogdto.SupplierCreateInput) (*models.Supplier, error) {
		return &models.Supplier{
			Name:         input.Name,
			ContactName:  input.ContactName,
			ContactEmail: input.ContactEmail,
			ContactPhone: input.ContactPhone,
		}, nil
	}
	baseHandler.TransformUpdate = func(input *catalogdto.SupplierUpdateInput) (*basesvc.UpdateData, error) {
		set := map[string]interface{}{}
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.ContactName != nil {
			set["contactName"] = *input.ContactName
		}
		if input.ContactEmail != nil {
			set["contactEmail"] = *input.ContactEmail
		}
		if input.ContactPhone != nil {
			set["contactPhone"] = *input.ContactPhone
		}
		return &basesvc.UpdateData{Set: set}, nil
	}

	return &SupplierHandler{
		BaseHandler:     baseHandler,
		supplierService: supplierService,
	}, nil
}
