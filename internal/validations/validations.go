// MIT License
//
// Copyright (c) 2021 TFG Co
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validations

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/topfreegames/gamehost/internal/core/validations"
)

var (
	Validate *validator.Validate
	uni      *ut.UniversalTranslator

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations adds the custom tags to the validator used by gin when
// binding requests. It is safe to call it more than once.
func RegisterValidations() error {
	registerOnce.Do(func() {
		registerErr = registerValidations()
	})

	return registerErr
}

func registerValidations() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("request binding is not backed by go-playground validator")
	}

	Validate = engine
	english := en.New()
	uni = ut.New(english, english)
	translator := GetDefaultTranslator()
	_ = enTranslations.RegisterDefaultTranslations(Validate, translator)

	err := Validate.RegisterValidation("gameserver_kind", gameServerKindValidate)
	if err != nil {
		return errors.New("could not register gameServerKindValidate")
	}
	addTranslation(Validate, "gameserver_kind", "{0} must be one of the following options: minecraft, xonotic")

	err = Validate.RegisterValidation("gameserver_id", gameServerIDValidate)
	if err != nil {
		return errors.New("could not register gameServerIDValidate")
	}
	addTranslation(Validate, "gameserver_id", "{0} must be a valid game server id")

	return nil
}

func GetDefaultTranslator() ut.Translator {
	translator, _ := uni.GetTranslator("en")
	return translator
}

// TranslateError turns validation errors into a single readable message.
func TranslateError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || uni == nil {
		return err.Error()
	}

	translator := GetDefaultTranslator()
	message := ""
	for i, fieldErr := range validationErrs {
		if i > 0 {
			message += "; "
		}
		message += fieldErr.Translate(translator)
	}

	return message
}

func gameServerKindValidate(fl validator.FieldLevel) bool {
	return validations.IsGameServerKindSupported(fl.Field().String())
}

func gameServerIDValidate(fl validator.FieldLevel) bool {
	return validations.IsServerIDValid(fl.Field().String())
}

func addTranslation(validate *validator.Validate, tag string, errMessage string) {
	registerFn := func(ut ut.Translator) error {
		return ut.Add(tag, errMessage, false)
	}

	transFn := func(ut ut.Translator, fieldError validator.FieldError) string {
		t, err := ut.T(fieldError.Tag(), fieldError.Field(), fieldError.Param())
		if err != nil {
			return fmt.Sprint(fieldError)
		}
		return t
	}

	_ = validate.RegisterTranslation(tag, GetDefaultTranslator(), registerFn, transFn)
}
