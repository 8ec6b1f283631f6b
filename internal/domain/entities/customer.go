package entities

import "strings"

// CustomerData holds the identity fields typed into the checkout modal.
// It lives for a single checkout attempt.
type CustomerData struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email_address"`
	Document string `json:"document" validate:"required,tax_document"`
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalized returns a copy with trimmed fields and a digits-only document.
func (c CustomerData) Normalized() CustomerData {
	return CustomerData{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Document: DigitsOnly(c.Document),
	}
}

// FirstName and LastName split the full name the way the payer object expects it.
func (c CustomerData) FirstName() string {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func (c CustomerData) LastName() string {
	parts := strings.Fields(c.Name)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

const (
	DocumentTypeCPF  = "CPF"
	DocumentTypeCNPJ = "CNPJ"
)

// DocumentType is CPF for 11 digits and CNPJ otherwise.
func (c CustomerData) DocumentType() string {
	if len(DigitsOnly(c.Document)) == 11 {
		return DocumentTypeCPF
	}
	return DocumentTypeCNPJ
}
