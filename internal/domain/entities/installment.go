package entities

// InstallmentOption is one financing tier for a price.
//
// InstallmentAmount is the regular installment. FirstInstallmentAmount absorbs
// the rounding remainder so that
// FirstInstallmentAmount + (Installments-1)*InstallmentAmount == TotalAmount.
type InstallmentOption struct {
	Installments           int    `json:"installments"`
	InstallmentAmount      Money  `json:"installment_amount"`
	FirstInstallmentAmount Money  `json:"first_installment_amount"`
	TotalAmount            Money  `json:"total_amount"`
	RecommendedMessage     string `json:"recommended_message,omitempty"`
}
