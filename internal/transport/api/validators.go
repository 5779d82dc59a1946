package api

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sajidali832/envo4/internal/domain"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	maxBytes, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return len(str) <= maxBytes
}

// validateMobileNumber номер мобильного телефона вида 03XXXXXXXXX.
func validateMobileNumber(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.IsMobileNumber(str)
}

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators регистрирует кастомные теги в валидаторе gin. Движок глобальный, поэтому регистрация
// выполняется один раз на процесс.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
			registerErr = fmt.Errorf("validator registration: %s", err.Error())
			return
		}
		if err := v.RegisterValidation("pk_mobile", validateMobileNumber); err != nil {
			registerErr = fmt.Errorf("validator registration: %s", err.Error())
		}
	})
	return registerErr
}
