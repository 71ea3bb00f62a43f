package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// District is a legislative district number. It decodes from a JSON number
// or a numeric string such as the zero-padded codes the Census geocoder
// returns ("007"). null and "" decode to 0.
type District int

// UnmarshalJSON implements json.Unmarshaler
func (d *District) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*d = 0
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			*d = 0
			return nil
		}
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(n, 0) || n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return fmt.Errorf("invalid district %s: must be an integer", raw)
	}

	*d = District(n)
	return nil
}
