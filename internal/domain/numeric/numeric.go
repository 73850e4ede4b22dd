// Package numeric carries the loose numeric coercion the API applies to
// client-supplied amounts and scores. Inputs arrive as arbitrary JSON
// values; anything that isn't a number (or a numeric string) becomes NaN
// and is stored as-is rather than rejected.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
)

type Number float64

// Coerce maps a decoded JSON value onto a Number. Absent values (nil)
// coerce to 0; unparseable values coerce to NaN.
func Coerce(v any) Number {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return Number(n)
	case float32:
		return Number(n)
	case int:
		return Number(n)
	case int32:
		return Number(n)
	case int64:
		return Number(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return Number(math.NaN())
		}
		return Number(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return Number(math.NaN())
		}
		return Number(f)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return Number(math.NaN())
	}
}

// MarshalJSON renders NaN and the infinities as null, which is what
// JSON serializers on the client side produce for those values.
// encoding/json would otherwise refuse to encode the record at all.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}

	var f float64

	if err := json.Unmarshal(data, &f); err != nil {
		// tolerate quoted numerics the same way Coerce does
		var s string

		if serr := json.Unmarshal(data, &s); serr != nil {
			return err
		}

		*n = Coerce(s)
		return nil
	}

	*n = Number(f)
	return nil
}
