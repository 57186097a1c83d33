package service

import (
	"errors"
	"slices"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/wellness"
)

var PostCategories = []string{"general", "anxiety", "depression", "motivation", "gratitude", "support"}

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return wellness.IsValidMood(fl.Field().String())
		})
		validate.RegisterValidation("post_category", func(fl validator.FieldLevel) bool {
			return IsPostCategory(fl.Field().String())
		})
	})
}

func IsPostCategory(c string) bool {
	return slices.Contains(PostCategories, c)
}

// validateStruct returns nil or ErrValidation joined with every field error
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// resolveLocation falls back to def for an empty name
func resolveLocation(name string, def *time.Location) (*time.Location, error) {
	if name == "" {
		if def == nil {
			return time.UTC, nil
		}
		return def, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errorvalues.ErrInvalidTZ
	}
	return loc, nil
}
