package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 DTO 的 validate 标签约束
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
