package utils

import (
	"log"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Course prices the platform accepts, Stripe rejects anything above 999999.99
var coursePriceValidator validator.Func = func(fl validator.FieldLevel) bool {
	price := fl.Field().Float()
	return price >= 0 && price <= 999999.99
}

func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("courseprice", coursePriceValidator)
	} else {
		log.Fatalf("error register validation")
	}
}
