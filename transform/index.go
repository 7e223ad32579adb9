// Package transform registers the list of all built-in FieldTransform implementations
package transform

import (
	"github.com/relex/record-refiner/base/bconfig"
	"github.com/relex/record-refiner/transform/tformatcurrency"
	"github.com/relex/record-refiner/transform/tformatphone"
	"github.com/relex/record-refiner/transform/tnormalizetext"
	"github.com/relex/record-refiner/transform/tparsenumeric"
	"github.com/relex/record-refiner/transform/tremovespecial"
	"github.com/relex/record-refiner/transform/tstandardizedate"
	"github.com/relex/record-refiner/transform/ttextcase"
	"github.com/relex/record-refiner/transform/ttrim"
	"github.com/relex/record-refiner/transform/tvalidateemail"
)

func init() {
	bconfig.RegisterFieldTransformConfigConstructors(map[string]func() bconfig.FieldTransformConfig{
		"capitalizeFirst":     func() bconfig.FieldTransformConfig { return &ttextcase.Config{} },
		"convertToUpper":      func() bconfig.FieldTransformConfig { return &ttextcase.Config{} },
		"formatCurrency":      func() bconfig.FieldTransformConfig { return &tformatcurrency.Config{} },
		"formatPhoneNumber":   func() bconfig.FieldTransformConfig { return &tformatphone.Config{} },
		"normalizeText":       func() bconfig.FieldTransformConfig { return &tnormalizetext.Config{} },
		"parseNumericValue":   func() bconfig.FieldTransformConfig { return &tparsenumeric.Config{} },
		"removeSpecialChars":  func() bconfig.FieldTransformConfig { return &tremovespecial.Config{} },
		"standardizeDate":     func() bconfig.FieldTransformConfig { return &tstandardizedate.Config{} },
		"trimWhitespace":      func() bconfig.FieldTransformConfig { return &ttrim.Config{} },
		"validateEmailFormat": func() bconfig.FieldTransformConfig { return &tvalidateemail.Config{} },
	})
}

// Register registers all transform config types
func Register() {
	// trigger init()
}
