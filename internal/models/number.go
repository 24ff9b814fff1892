package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number or a numeric JSON string. HTML form
// controls always yield strings, so "4" and 4 are both accepted.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(raw))
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("expected integer, got %s", string(data))
	}
	*n = FlexInt(v)
	return nil
}

// Int64 returns the plain value.
func (n FlexInt) Int64() int64 {
	return int64(n)
}
