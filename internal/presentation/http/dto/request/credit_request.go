package request

// RecordPaymentRequest represents a credit payment against a sale
type RecordPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,max=50"`
	ChequeNumber  *string `json:"cheque_number" binding:"omitempty,max=100"`
	ChequeDate    *string `json:"cheque_date" binding:"omitempty,datetime=2006-01-02"`
	Note          *string `json:"note"`
}
