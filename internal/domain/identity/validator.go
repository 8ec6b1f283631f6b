// Package identity validates the customer identity fields collected at checkout.
package identity

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"stuff3d_checkout/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	RuleRequired    = "required"
	RuleEmail       = "email_address"
	RuleTaxDocument = "tax_document"
	RuleCheckDigits = "check_digits"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var violationMessages = map[string]string{
	RuleRequired:    "is required",
	RuleEmail:       "must be a valid email address",
	RuleTaxDocument: "must have 11 (CPF) or 14 (CNPJ) digits",
	RuleCheckDigits: "has invalid check digits",
}

// Violation is a single field-level failure.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found for a submission attempt.
type ValidationError struct {
	Violations []Violation
}

var ErrInvalidCustomerData = errors.New("invalid customer data")

func (e *ValidationError) Error() string {
	fields := lo.Map(e.Violations, func(v Violation, _ int) string {
		return v.Field + " " + v.Message
	})
	return fmt.Sprintf("%s: %s", ErrInvalidCustomerData, strings.Join(fields, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCustomerData }

// Validator checks CustomerData. It has no side effects and is safe for
// concurrent use.
type Validator struct {
	val         *validator.Validate
	checkDigits bool
}

type Option func(*Validator)

// WithCheckDigits additionally verifies CPF/CNPJ check digits.
func WithCheckDigits() Option {
	return func(v *Validator) { v.checkDigits = true }
}

func NewValidator(opts ...Option) *Validator {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = val.RegisterValidation(RuleEmail, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation(RuleTaxDocument, func(fl validator.FieldLevel) bool {
		n := len(entities.DigitsOnly(fl.Field().String()))
		return n == 11 || n == 14
	})

	v := &Validator{val: val}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns nil when the data is valid, otherwise a *ValidationError.
// Fields are trimmed and the document reduced to digits before the rules run.
func (v *Validator) Validate(data entities.CustomerData) error {
	normalized := data.Normalized()

	var violations []Violation
	if err := v.val.Struct(normalized); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		violations = lo.Map(fieldErrs, func(fe validator.FieldError, _ int) Violation {
			return Violation{Field: fe.Field(), Rule: fe.Tag(), Message: violationMessages[fe.Tag()]}
		})
	}

	if v.checkDigits && !lo.ContainsBy(violations, func(x Violation) bool { return x.Field == "document" }) {
		if !ValidCheckDigits(normalized.Document) {
			violations = append(violations, Violation{Field: "document", Rule: RuleCheckDigits, Message: violationMessages[RuleCheckDigits]})
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// ValidCheckDigits verifies the two trailing check digits of a CPF or CNPJ.
// Documents made of one repeated digit are rejected.
func ValidCheckDigits(document string) bool {
	doc := entities.DigitsOnly(document)
	if doc == "" || strings.Count(doc, doc[:1]) == len(doc) {
		return false
	}
	switch len(doc) {
	case 11:
		return checkDigit(doc[:9], []int{10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(doc[9]-'0') &&
			checkDigit(doc[:10], []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(doc[10]-'0')
	case 14:
		return checkDigit(doc[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == int(doc[12]-'0') &&
			checkDigit(doc[:13], []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == int(doc[13]-'0')
	}
	return false
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}
