package models

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return IsObjectID(fl.Field().String())
	})
	return v
}

// Validator returns the shared validator with the objectid rule registered.
func Validator() *validator.Validate {
	return validate
}

// NewID returns a fresh identifier as 24 lowercase hex characters.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsObjectID reports whether s is a well-formed identifier.
func IsObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// CanonicalID returns the lowercase form of a well-formed identifier.
// Hex digits are accepted in either case, so "507F..." and "507f..." name
// the same record.
func CanonicalID(s string) (string, bool) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}
