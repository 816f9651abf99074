package sqlconfig

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Split is one category portion of a split transaction.
type Split struct {
	CategoryID uuid.UUID       `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
}

// SplitList stores split portions as a jsonb column.
type SplitList []Split

func (s SplitList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *SplitList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("sqlconfig: cannot scan %T into SplitList", src)
	}
}
