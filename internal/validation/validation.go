// Package validation registers the request validators used by the HTTP layer.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v8"

	"github.com/DrGermanius/backoffice/internal/payout"
)

const (
	TagName = "validate"

	bankcode = "bankcode"
	digits   = "digits"
)

// isValidBankCode checks the code against the merged bank and e-wallet tables.
func isValidBankCode(
	_ *validator.Validate, _ reflect.Value, _ reflect.Value,
	field reflect.Value, _ reflect.Type, _ reflect.Kind, _ string) bool {
	_, ok := payout.ChannelCode(field.String())
	return ok
}

func isDigits(
	_ *validator.Validate, _ reflect.Value, _ reflect.Value,
	field reflect.Value, _ reflect.Type, _ reflect.Kind, _ string) bool {
	s := strings.TrimSpace(field.String())
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func registerValidator(engine *validator.Validate, name string, function validator.Func) error {
	if err := engine.RegisterValidation(name, function); err != nil {
		return errors.Wrapf(err, "could not register %q validation", name)
	}
	return nil
}

// New returns an engine reading the "validate" tag with every custom validator registered.
func New() (*validator.Validate, error) {
	engine := validator.New(&validator.Config{TagName: TagName})

	validators := map[string]validator.Func{
		bankcode: isValidBankCode,
		digits:   isDigits,
	}
	for name, function := range validators {
		if err := registerValidator(engine, name, function); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

// Message flattens validation errors into one stable, human readable line.
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", fe.Field, fe.Tag, fe.Param))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field, fe.Tag))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
