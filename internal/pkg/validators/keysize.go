package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AESKeySizeTag is the struct tag that selects AESKeySizeValidation
const AESKeySizeTag = "aeskeysize"

// AESKeySizeValidation validates that an integer field holds an AES key size in bytes (16, 24 or 32).
func AESKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize == 16 || keySize == 24 || keySize == 32
}

// New returns a validator with the custom packed-aes validations registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(AESKeySizeTag, AESKeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", AESKeySizeTag, err)
	}
	return validate, nil
}

// Describe flattens validation errors into "Field: X, Tag: Y" messages.
func Describe(validationErrors validator.ValidationErrors) []string {
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return messages
}
