package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// seatLabelPattern matches the canonical berth syntax: 1..16 plus a
// U/L deck suffix.
var seatLabelPattern = regexp.MustCompile(`^(?:[1-9]|1[0-6])[UL]$`)

// RegisterValidations installs custom binding rules on Gin's validator
// engine. Call once before serving.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("seatlabel", func(fl validator.FieldLevel) bool {
		return seatLabelPattern.MatchString(fl.Field().String())
	})
}
