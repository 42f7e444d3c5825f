package server

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bookingDateLayout is the wire format for check-in/check-out dates.
const bookingDateLayout = "2006-01-02"

// registerValidators installs custom binding rules on gin's validator
// engine. "bookdate" rejects malformed stay dates at bind time so
// booking handlers never reach the service with an unparseable date.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(bookingDateLayout, fl.Field().String())
		return err == nil
	})
}
