package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"stuff3d_checkout/internal/domain/entities"
)

const (
	storeName = "3D Stuff"

	pixExpiration    = 30 * time.Minute
	boletoExpiration = 7 * 24 * time.Hour

	providerMethodPix    = "pix"
	providerMethodBoleto = "bolbradesco"
	defaultCardMethod    = "visa"

	// Mercado Pago expects milliseconds and a numeric offset.
	providerTimeLayout = "2006-01-02T15:04:05.000-07:00"
)

type providerPayload struct {
	fields            map[string]any
	externalReference string
	expiresAt         *time.Time
}

// buildProviderPayload assembles the Mercado Pago create-payment body for the
// request's method.
func buildProviderPayload(req entities.PaymentRequest, product entities.Product, amount entities.Money, now time.Time) providerPayload {
	ref := externalReference(product.ID, now)
	fields := map[string]any{
		"transaction_amount": amount.Float64(),
		"description":        fmt.Sprintf("%s - %s", product.Name, storeName),
		"external_reference": ref,
		"payer": map[string]any{
			"email":      req.Customer.Email,
			"first_name": req.Customer.FirstName(),
			"last_name":  req.Customer.LastName(),
			"identification": map[string]any{
				"type":   req.Customer.DocumentType(),
				"number": req.Customer.Document,
			},
		},
	}

	var expiresAt *time.Time
	switch req.Method {
	case entities.PaymentMethodPix:
		fields["payment_method_id"] = providerMethodPix
		exp := now.Add(pixExpiration)
		expiresAt = &exp
	case entities.PaymentMethodBoleto:
		fields["payment_method_id"] = providerMethodBoleto
		exp := now.Add(boletoExpiration)
		expiresAt = &exp
	case entities.PaymentMethodCreditCard:
		methodID := strings.TrimSpace(req.CardPaymentMethodID)
		if methodID == "" {
			methodID = defaultCardMethod
		}
		fields["payment_method_id"] = methodID
		fields["token"] = req.CardToken
		fields["installments"] = req.Installments
		if req.IssuerID != "" {
			fields["issuer_id"] = req.IssuerID
		}
	}
	if expiresAt != nil {
		fields["date_of_expiration"] = expiresAt.Format(providerTimeLayout)
	}

	return providerPayload{fields: fields, externalReference: ref, expiresAt: expiresAt}
}

func externalReference(productID string, now time.Time) string {
	return fmt.Sprintf("3DSTUFF_%s_%s", productID, now.Format("20060102150405"))
}

// providerPayment is the subset of the Mercado Pago payment resource the
// checkout reads.
type providerPayment struct {
	Status             string     `json:"status"`
	StatusDetail       string     `json:"status_detail"`
	PaymentMethodID    string     `json:"payment_method_id"`
	PaymentTypeID      string     `json:"payment_type_id"`
	TransactionAmount  float64    `json:"transaction_amount"`
	Installments       int        `json:"installments"`
	ExternalReference  string     `json:"external_reference"`
	DateOfExpiration   *time.Time `json:"date_of_expiration"`
	DateApproved       *time.Time `json:"date_approved"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
	TransactionDetails struct {
		ExternalResourceURL string `json:"external_resource_url"`
		DigitableLine       string `json:"digitable_line"`
	} `json:"transaction_details"`
	Barcode struct {
		Content string `json:"content"`
	} `json:"barcode"`
}

// parseProviderPayment is lenient: fields it cannot read stay empty.
func parseProviderPayment(raw json.RawMessage) providerPayment {
	var p providerPayment
	if len(raw) == 0 {
		return p
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		// retry without the time fields, which are the usual culprits
		var loose struct {
			providerPayment
			DateOfExpiration any `json:"date_of_expiration"`
			DateApproved     any `json:"date_approved"`
		}
		if err := json.Unmarshal(raw, &loose); err == nil {
			p = loose.providerPayment
			p.DateOfExpiration, p.DateApproved = nil, nil
		}
	}
	return p
}

func (p providerPayment) method() entities.PaymentMethod {
	switch {
	case p.PaymentMethodID == providerMethodPix:
		return entities.PaymentMethodPix
	case p.PaymentMethodID == providerMethodBoleto || p.PaymentTypeID == "ticket":
		return entities.PaymentMethodBoleto
	case p.PaymentMethodID != "":
		return entities.PaymentMethodCreditCard
	}
	return ""
}

func (p providerPayment) toResult(paymentID string, method entities.PaymentMethod) entities.PaymentResult {
	if method == "" {
		method = p.method()
	}
	result := entities.PaymentResult{
		PaymentID:         paymentID,
		Status:            entities.NormalizeProviderStatus(p.Status),
		StatusDetail:      p.StatusDetail,
		Method:            method,
		Amount:            entities.NewMoneyFromFloat(p.TransactionAmount),
		ExternalReference: p.ExternalReference,
		ExpiresAt:         p.DateOfExpiration,
		ApprovedAt:        p.DateApproved,
	}
	switch method {
	case entities.PaymentMethodPix:
		result.QRCode = p.PointOfInteraction.TransactionData.QRCode
		result.QRCodeBase64 = p.PointOfInteraction.TransactionData.QRCodeBase64
		result.TicketURL = p.PointOfInteraction.TransactionData.TicketURL
	case entities.PaymentMethodBoleto:
		result.TicketURL = p.TransactionDetails.ExternalResourceURL
		result.Barcode = p.Barcode.Content
		if result.Barcode == "" {
			result.Barcode = p.TransactionDetails.DigitableLine
		}
	case entities.PaymentMethodCreditCard:
		result.Installments = p.Installments
	}
	return result
}

// classifyGatewayError maps provider failures the checkout can explain to
// sentinels; anything else is returned unchanged.
func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayCustomerNotFound, err)
	case isGatewayInvalidUsers(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInvalidUsers, err)
	case isGatewayUnauthorized(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case isGatewayBadRequest(err):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func gatewayFailureReason(err error) string {
	switch {
	case errors.Is(err, ErrPaymentGatewayCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, ErrPaymentGatewayInvalidUsers):
		return "invalid_users"
	case errors.Is(err, ErrPaymentGatewayUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrPaymentGatewayBadRequest):
		return "bad_request"
	}
	return "unavailable"
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"not_found\"") || strings.Contains(msg, "\"status\":404")
}
