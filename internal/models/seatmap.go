package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SeatMap is a jagged matrix of seat-state codes, persisted as a JSON array
// in a TEXT column. Decoding is deliberately forgiving: a missing, empty or
// malformed column value yields an empty layout instead of an error, so a
// bad row never breaks a read.
type SeatMap [][]int

func (m SeatMap) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "[]", nil
	}
	return string(data), nil
}

func (m *SeatMap) Scan(value any) error {
	if value == nil {
		*m = SeatMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("seatmap: unsupported column type %T", value)
	}

	if len(raw) == 0 {
		*m = SeatMap{}
		return nil
	}

	var decoded [][]int
	if err := json.Unmarshal(raw, &decoded); err != nil {
		*m = SeatMap{}
		return nil
	}
	if decoded == nil {
		decoded = [][]int{}
	}
	*m = decoded
	return nil
}
