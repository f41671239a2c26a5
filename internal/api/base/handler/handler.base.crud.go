// Package basehdl cung cấp base CRUD handler dùng chung cho các collection.
// Mỗi domain handler embed BaseHandler và cung cấp hàm transform DTO → Model.
package basehdl

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// BaseHandler xử lý các request CRUD chuẩn cho một collection.
// Type Parameters:
//   - T: Model của collection
//   - CreateInput: DTO đầu vào khi tạo mới
//   - UpdateInput: DTO đầu vào khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService *basesvc.BaseServiceMongoImpl[T]

	// TransformCreate chuyển CreateInput thành Model (do domain handler cung cấp)
	TransformCreate func(input *CreateInput) (*T, error)
	// TransformUpdate chuyển UpdateInput thành dữ liệu update (do domain handler cung cấp)
	TransformUpdate func(input *UpdateInput) (*basesvc.UpdateData, error)
}

// NewBaseHandler tạo mới một BaseHandler với service tương ứng.
// TransformCreate/TransformUpdate mặc định map toàn bộ DTO sang Model/UpdateData,
// domain handler có thể gán lại để tùy biến.
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service *basesvc.BaseServiceMongoImpl[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: service,
		TransformCreate: func(input *CreateInput) (*T, error) {
			dataMap, err := utility.ToMap(input)
			if err != nil {
				return nil, common.ErrInvalidFormat
			}
			var model T
			if err := utility.MapToStruct(dataMap, &model); err != nil {
				return nil, common.ErrInvalidFormat
			}
			return &model, nil
		},
		TransformUpdate: func(input *UpdateInput) (*basesvc.UpdateData, error) {
			return basesvc.ToUpdateData(input)
		},
	}
}

// HandleResponse chuẩn hóa response (delegate tới hàm package-level cùng tên)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	HandleResponse(c, data, err)
}

// ParseRequestBody parse request body JSON vào struct đích
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	return json.Unmarshal(c.Body(), out)
}

// ValidateInput validate DTO với struct tag (validate, oneof, ...)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			details := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				details = append(details, fmt.Sprintf("field '%s' không thỏa điều kiện '%s'", fieldErr.Field(), fieldErr.Tag()))
			}
			return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, details)
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ProcessFilter parse filter JSON từ query string thành bson.M
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (bson.M, error) {
	filterStr := c.Query("filter", "{}")
	var filter bson.M
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter phải là một JSON object hợp lệ. Giá trị nhận được: %s", filterStr),
			common.StatusBadRequest,
			err.Error(),
		)
	}
	return filter, nil
}

// processFindOptions parse sort/limit/skip từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOptions(c fiber.Ctx) (*options.FindOptions, error) {
	opts := options.Find()

	if sortStr := c.Query("sort"); sortStr != "" {
		var sort bson.D
		// Sort nhận JSON object giữ thứ tự field, ví dụ: {"receiptDate": -1}
		var sortMap map[string]int
		if err := json.Unmarshal([]byte(sortStr), &sortMap); err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Sort phải là một JSON object hợp lệ. Giá trị nhận được: %s", sortStr),
				common.StatusBadRequest,
				err.Error(),
			)
		}
		for key, value := range sortMap {
			sort = append(sort, bson.E{Key: key, Value: value})
		}
		opts.SetSort(sort)
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			opts.SetLimit(limit)
		}
	}
	if skipStr := c.Query("skip"); skipStr != "" {
		if skip, err := strconv.ParseInt(skipStr, 10, 64); err == nil && skip >= 0 {
			opts.SetSkip(skip)
		}
	}

	return opts, nil
}

// parseObjectIDParam lấy và validate ObjectID từ URL params
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseObjectIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// InsertOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput), validate rồi transform sang Model.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreate(&input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm nhiều document theo filter (query string JSON) với sort/limit/skip tùy chọn
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processFindOptions(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, opts)
		HandleResponse(c, data, err)
		return nil
	})
}

// FindOne tìm một document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOne(c.Context(), filter, nil)
		HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById tìm một document theo ID trong URL params
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination tìm document với phân trang (query: filter, page, limit, sort)
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processFindOptions(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, opts)
		HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật một document theo ID.
// Dữ liệu được parse từ request body (DTO UpdateInput), validate rồi transform sang UpdateData.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.TransformUpdate(&input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, update)
		HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa một document theo ID
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.parseObjectIDParam(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), id)
		HandleResponse(c, nil, err)
		return nil
	})
}

// CountDocuments đếm số document khớp filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		HandleResponse(c, count, err)
		return nil
	})
}

// DocumentExists kiểm tra tồn tại của document khớp filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		HandleResponse(c, exists, err)
		return nil
	})
}
