package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces a raw user-supplied value to a float.
// Empty, unparseable and NaN values become 0. Values too large for a float64
// overflow to ±Inf rather than 0.
func ParseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return v
		}
		return 0
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// ParseFlag reports whether a raw checkbox-style value is set.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// number is a float64 that tolerates anything on decode and writes
// non-finite values as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n *number) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = number(ParseNumber(s))
	}
	return nil
}

// flag is a bool that also accepts checkbox-style strings and numbers.
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	*f = false
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flag(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flag(ParseFlag(s))
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = v != 0
	}
	return nil
}

type inputJSON struct {
	Name          string `json:"name"`
	Jar           number `json:"jar"`
	WaxGrams      number `json:"waxGrams"`
	Wick          number `json:"wick"`
	FragPricePerL number `json:"fragPricePerL"`
	FragGrams     number `json:"fragGrams"`
	ColorDrops    number `json:"colorDrops"`
	PackBox       number `json:"packBox"`
	PackSticker   number `json:"packSticker"`
	PackRibbon    number `json:"packRibbon"`
	Additional    number `json:"additional"`
	ProfitPct     number `json:"profitPct"`
	GSTPct        number `json:"gstPct"`
	ApplyGST      flag   `json:"applyGst"`
}

// MarshalJSON writes the input using the field names of saved calculations.
func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(inputJSON{
		Name:          in.Name,
		Jar:           number(in.JarCost),
		WaxGrams:      number(in.WaxGrams),
		Wick:          number(in.WickCost),
		FragPricePerL: number(in.FragrancePricePerLiter),
		FragGrams:     number(in.FragranceGrams),
		ColorDrops:    number(in.ColorDrops),
		PackBox:       number(in.PackagingBox),
		PackSticker:   number(in.PackagingSticker),
		PackRibbon:    number(in.PackagingRibbon),
		Additional:    number(in.AdditionalCharges),
		ProfitPct:     number(in.ProfitPercent),
		GSTPct:        number(in.GSTPercent),
		ApplyGST:      flag(in.ApplyGST),
	})
}

// UnmarshalJSON reads an input, coercing missing or non-numeric fields to 0.
func (in *Input) UnmarshalJSON(data []byte) error {
	var w inputJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*in = Input{
		Name:                   w.Name,
		JarCost:                float64(w.Jar),
		WaxGrams:               float64(w.WaxGrams),
		WickCost:               float64(w.Wick),
		FragrancePricePerLiter: float64(w.FragPricePerL),
		FragranceGrams:         float64(w.FragGrams),
		ColorDrops:             float64(w.ColorDrops),
		PackagingBox:           float64(w.PackBox),
		PackagingSticker:       float64(w.PackSticker),
		PackagingRibbon:        float64(w.PackRibbon),
		AdditionalCharges:      float64(w.Additional),
		ProfitPercent:          float64(w.ProfitPct),
		GSTPercent:             float64(w.GSTPct),
		ApplyGST:               bool(w.ApplyGST),
	}
	return nil
}

type outputJSON struct {
	WaxCost      number `json:"waxCost"`
	FragCost     number `json:"fragCost"`
	ColorCost    number `json:"colorCost"`
	JarCost      number `json:"jarCost"`
	WickCost     number `json:"wickCost"`
	Packaging    number `json:"packaging"`
	Extra        number `json:"extra"`
	Total        number `json:"total"`
	ProfitAmount number `json:"profitAmount"`
	SellingPrice number `json:"sellingPrice"`
	FinalPrice   number `json:"finalPrice"`
	GSTAmount    number `json:"gstAmount"`
	PricePerDrop number `json:"pricePerDrop"`
}

// MarshalJSON writes the output using the field names of saved calculations.
func (out Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(outputJSON{
		WaxCost:      number(out.WaxCost),
		FragCost:     number(out.FragranceCost),
		ColorCost:    number(out.ColorCost),
		JarCost:      number(out.JarCost),
		WickCost:     number(out.WickCost),
		Packaging:    number(out.PackagingSubtotal),
		Extra:        number(out.AdditionalCharges),
		Total:        number(out.TotalCost),
		ProfitAmount: number(out.ProfitAmount),
		SellingPrice: number(out.SellingPrice),
		FinalPrice:   number(out.FinalPrice),
		GSTAmount:    number(out.GSTAmount),
		PricePerDrop: number(out.PricePerColorDrop),
	})
}

// UnmarshalJSON reads a saved output. Values are taken as stored, not recomputed.
func (out *Output) UnmarshalJSON(data []byte) error {
	var w outputJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*out = Output{
		WaxCost:           float64(w.WaxCost),
		FragranceCost:     float64(w.FragCost),
		ColorCost:         float64(w.ColorCost),
		JarCost:           float64(w.JarCost),
		WickCost:          float64(w.WickCost),
		PackagingSubtotal: float64(w.Packaging),
		AdditionalCharges: float64(w.Extra),
		TotalCost:         float64(w.Total),
		ProfitAmount:      float64(w.ProfitAmount),
		SellingPrice:      float64(w.SellingPrice),
		FinalPrice:        float64(w.FinalPrice),
		GSTAmount:         float64(w.GSTAmount),
		PricePerColorDrop: float64(w.PricePerDrop),
	}
	return nil
}
