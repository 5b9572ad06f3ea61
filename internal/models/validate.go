package models

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var cyrillicNameRegex = regexp.MustCompile(`^[А-ЯЁ][а-яё]+$`)

// validate is shared so the custom rule is registered once
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json field names instead of Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("cyrillic_name", func(fl validator.FieldLevel) bool {
		return cyrillicNameRegex.MatchString(fl.Field().String())
	})

	return v
}
