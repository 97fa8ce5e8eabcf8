package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CreditStatus classifies a sale by its outstanding balance
type CreditStatus int

const (
	CreditStatusUnpaid  CreditStatus = 0
	CreditStatusPartial CreditStatus = 1
	CreditStatusPaid    CreditStatus = 2
)

// DeriveCreditStatus classifies a sale from its balance and total, both in
// cents. Overpayment (negative balance) counts as fully paid.
func DeriveCreditStatus(balance, total int64) CreditStatus {
	switch {
	case balance <= 0:
		return CreditStatusPaid
	case balance < total:
		return CreditStatusPartial
	default:
		return CreditStatusUnpaid
	}
}

func (s CreditStatus) String() string {
	return [...]string{"Unpaid", "Partial", "Paid"}[s]
}

func (s CreditStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CreditStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CreditStatus(i)
		return nil
	}
	switch str {
	case "Unpaid":
		*s = CreditStatusUnpaid
	case "Partial":
		*s = CreditStatusPartial
	case "Paid":
		*s = CreditStatusPaid
	}
	return nil
}

func (s CreditStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CreditStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CreditStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CreditStatus(v)
	case int:
		*s = CreditStatus(v)
	}
	return nil
}
