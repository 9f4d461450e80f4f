package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimal accepts a JSON number or a numeric-looking string. The original
// clients submit form values, so "12.50" and 12.50 must both parse.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value %s is not a valid number", s)
	}

	*d = Decimal(v)
	return nil
}

// Integer accepts a JSON integer or an integer-looking string. Fractional
// input is rejected rather than truncated.
type Integer int

func (i *Integer) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("value %s is not a valid integer", s)
	}

	*i = Integer(v)
	return nil
}
