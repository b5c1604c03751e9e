package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/mechkit/internal/numfmt"
)

// Float is a float64 that survives JSON. Finite values are plain numbers;
// NaN and the infinities are written as the strings "NaN", "Infinity" and
// "-Infinity".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(numfmt.Invariant.FormatFloat(v))
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("storage: invalid number %q: %w", s, err)
		}
		*f = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
