package handler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"watchthis/sharing/internal/models"
)

var registerOnce sync.Once

// RegisterValidators adds the share-specific tags to gin's validator:
//
//	sharefilter: "all" or a known status
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if regErr := v.RegisterValidation("sharefilter", validateShareFilter); regErr != nil {
			err = fmt.Errorf("register sharefilter: %w", regErr)
		}
	})
	return err
}

func validateShareFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "all" || models.ShareStatus(value).Valid()
}

// failedTag reports whether err is a validation failure on tag.
func failedTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
