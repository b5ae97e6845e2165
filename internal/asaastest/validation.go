package asaastest

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

var (
	errBinding    = errors.New("binding failed")
	errValidation = errors.New("validation failed")
	errNotObject  = errors.New("body must be a JSON object")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// requestValidator returns the singleton validator, reporting fields by their JSON names.
func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// bindJSON decodes a JSON object body into v. Asaas rejects any other JSON
// value, null included.
func bindJSON(c *gin.Context, v any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %w", errBinding, err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return fmt.Errorf("%w: %w", errBinding, errNotObject)
	}
	if err := binding.JSON.BindBody(raw, v); err != nil {
		return fmt.Errorf("%w: %w", errBinding, err)
	}

	return validateStruct(v)
}

func bindQuery(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", errBinding, err)
	}

	return validateStruct(v)
}

func validateStruct(v any) error {
	if err := requestValidator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", errValidation, err)
	}

	return nil
}

// validationMessages maps validation tags to Portuguese descriptions, as Asaas
// answers in pt_BR.
var validationMessages = map[string]string{
	"notempty": "O campo {field} deve ser informado.",
	"email":    "O email informado é inválido.",
	"numeric":  "O campo {field} deve conter apenas números.",
	"oneof":    "O campo {field} deve ser um dos valores: {param}.",
	"datetime": "O campo {field} deve estar no formato AAAA-MM-DD.",
	"gt":       "O campo {field} deve ser maior que {param}.",
	"gte":      "O campo {field} deve ser maior ou igual a {param}.",
	"lte":      "O campo {field} deve ser menor ou igual a {param}.",
	"len":      "O campo {field} deve ter {param} caracteres.",
	"min":      "O campo {field} deve ter no mínimo {param} caracteres.",
	"max":      "O campo {field} deve ter no máximo {param} caracteres.",
	"ip":       "O IP informado é inválido.",
}

// toErrorResponse turns a bind or validation failure into an Asaas error payload.
// Each invalid field becomes an "invalid_<field>" entry.
func toErrorResponse(err error) *ErrorResponse {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewErrorResponse("invalid_request", "Requisição inválida: "+err.Error())
	}

	resp := &ErrorResponse{Errors: make([]ErrorEntry, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := validationMessages[fe.Tag()]
		if !ok {
			msg = "O campo {field} é inválido."
		}
		msg = strings.ReplaceAll(msg, "{field}", fe.Field())
		msg = strings.ReplaceAll(msg, "{param}", fe.Param())

		resp.Errors = append(resp.Errors, ErrorEntry{Code: "invalid_" + fe.Field(), Description: msg})
	}

	return resp
}
