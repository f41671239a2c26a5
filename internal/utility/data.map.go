package utility

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToMap chuyển đổi một struct thành map[string]interface{} thông qua bson marshal/unmarshal.
// Dùng khi cần thêm các field động (timestamps) trước khi ghi vào MongoDB.
func ToMap(data interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MapToStruct chuyển map[string]interface{} thành struct đích thông qua bson marshal/unmarshal.
// Ngược lại với ToMap, dùng khi transform DTO sang Model.
func MapToStruct(data map[string]interface{}, out interface{}) error {
	raw, err := bson.Marshal(data)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Trả về ObjectID zero nếu chuỗi không hợp lệ.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}
