package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserLevel is the access tier of a user: L1 cashiers can record sales,
// quotations and credit payments; L2 managers get full CRUD everywhere.
type UserLevel int

const (
	UserLevelCashier UserLevel = 1
	UserLevelManager UserLevel = 2
)

func (l UserLevel) String() string {
	if l == UserLevelManager {
		return "L2"
	}
	return "L1"
}

func (l UserLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *UserLevel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*l = UserLevel(i)
		return nil
	}
	switch str {
	case "L2":
		*l = UserLevelManager
	default:
		*l = UserLevelCashier
	}
	return nil
}

func (l UserLevel) Value() (driver.Value, error) {
	return int64(l), nil
}

func (l *UserLevel) Scan(value interface{}) error {
	if value == nil {
		*l = UserLevelCashier
		return nil
	}
	switch v := value.(type) {
	case int64:
		*l = UserLevel(v)
	case int:
		*l = UserLevel(v)
	}
	return nil
}
