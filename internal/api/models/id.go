package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// NumericID is an integer id that clients may also send as a JSON string, e.g. "2".
type NumericID int64

func (id *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}

	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		s = unquoted
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = NumericID(n)
	return nil
}
