package dto

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	res "newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

// PageResponse 分页成功响应
func PageResponse(c *gin.Context, items any, total int64, page, pageSize, totalPages int) {
	SuccessResponse(c, res.PageData{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.HTTPStatus(), res.ErrorResponse(err.Code, err.Msg))
}

// Error 将任意错误写为响应；非业务错误按内部错误处理
func Error(c *gin.Context, err error, fallback string) {
	var be *res.BusinessError
	if errors.As(err, &be) {
		if be.Code == res.Fail && be.Err != nil {
			_ = c.Error(be.Err)
		}
		ErrorResponse(c, be)
		return
	}
	_ = c.Error(err)
	ErrorResponse(c, res.NewInternal(fallback, err))
}

// AbortWithError 写错误响应并中断后续 handler
func AbortWithError(c *gin.Context, err *res.BusinessError) {
	ErrorResponse(c, err)
	c.Abort()
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		firstErr := validationErrs[0]
		jsonField := getJSONFieldName(firstErr)

		var message string
		switch firstErr.Tag() {
		case "required":
			message = fmt.Sprintf("field '%s' is required", jsonField)
		case "max":
			message = fmt.Sprintf("field '%s' must be at most %s", jsonField, firstErr.Param())
		case "min":
			message = fmt.Sprintf("field '%s' must be at least %s", jsonField, firstErr.Param())
		case "oneof":
			message = fmt.Sprintf("field '%s' must be one of: %s", jsonField, firstErr.Param())
		case "email":
			message = fmt.Sprintf("field '%s' must be a valid email", jsonField)
		default:
			message = fmt.Sprintf("field '%s' failed validation: %s", jsonField, firstErr.Tag())
		}

		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage(message),
		))
		return
	}

	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("invalid request: "+err.Error()),
	))
}

// getJSONFieldName 获取字段的JSON标签名称
// validator 不提供结构体实例，这里返回命名空间最后一段的 snake_case
func getJSONFieldName(fe validator.FieldError) string {
	field := fe.StructNamespace()
	if idx := strings.LastIndex(field, "."); idx >= 0 {
		return toSnakeCase(field[idx+1:])
	}
	return toSnakeCase(fe.Field())
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(s[i-1])
			if prev < 'A' || prev > 'Z' {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
