package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/english-companion/internal/apierr"
)

const invalidRequestMessage = "Invalid request"

var (
	validatorOnce sync.Once
	validatorErr  error
	translator    ut.Translator
)

// setupValidator configures gin's shared validator to report request field names and English messages.
func setupValidator() error {
	validatorOnce.Do(func() {
		validate, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		translator, _ = uni.GetTranslator("en")
		if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
			validatorErr = fmt.Errorf("failed to register default translations: %w", err)
			return
		}
		validate.RegisterTagNameFunc(requestFieldName)
	})
	return validatorErr
}

func requestFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindingError(err, "")
	}
	return nil
}

// bindQuery and bindURI bind single-field requests, so conversion errors are reported against field.
func bindQuery(c *gin.Context, obj interface{}, field string) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return bindingError(err, field)
	}
	return nil
}

func bindURI(c *gin.Context, obj interface{}, field string) error {
	if err := c.ShouldBindUri(obj); err != nil {
		return bindingError(err, field)
	}
	return nil
}

// bindingError converts a binding failure into a validation error with one detail per field.
func bindingError(err error, field string) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]apierr.Detail, 0, len(validationErrors))
		for _, fe := range validationErrors {
			details = append(details, apierr.Detail{
				Path:    fieldPath(fe.Namespace()),
				Message: fe.Translate(translator),
			})
		}
		return apierr.Validation(invalidRequestMessage, details...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		message := fmt.Sprintf("Expected %s, received %s", jsonTypeName(typeErr.Type), typeErr.Value)
		if strings.HasPrefix(typeErr.Value, "number") && isIntegerKind(typeErr.Type.Kind()) {
			message = "Expected integer, received float"
		}
		return apierr.Validation(invalidRequestMessage, apierr.Detail{
			Path:    fieldPath("request." + typeErr.Field),
			Message: message,
		})
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return apierr.Validation(invalidRequestMessage, apierr.Detail{
			Path:    pathOf(field),
			Message: fmt.Sprintf("Expected number, received %q", numErr.Num),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apierr.Validation(invalidRequestMessage, apierr.Detail{
			Path:    []string{},
			Message: "Request body must be valid JSON",
		})
	}

	return apierr.Validation(invalidRequestMessage, apierr.Detail{Path: pathOf(field), Message: err.Error()})
}

// fieldPath turns a validator namespace such as "submitQuizRequest.answers[0].answer"
// into ["answers", "0", "answer"], dropping the top-level type name.
func fieldPath(namespace string) []string {
	segments := strings.Split(namespace, ".")
	path := []string{}
	for _, segment := range segments[1:] {
		for segment != "" {
			open := strings.IndexByte(segment, '[')
			if open < 0 {
				path = append(path, segment)
				break
			}
			if open > 0 {
				path = append(path, segment[:open])
			}
			end := strings.IndexByte(segment[open:], ']')
			if end < 0 {
				path = append(path, segment[open+1:])
				break
			}
			path = append(path, segment[open+1:open+end])
			segment = segment[open+end+1:]
		}
	}
	return path
}

func pathOf(field string) []string {
	if field == "" {
		return []string{}
	}
	return []string{field}
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	default:
		return "object"
	}
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
