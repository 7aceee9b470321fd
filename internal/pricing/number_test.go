package pricing

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestParseNumber_CoercesToZero(t *testing.T) {
	for _, raw := range []string{"", "abc", "NaN", "1,5", "  "} {
		if got := ParseNumber(raw); got != 0 {
			t.Fatalf("ParseNumber(%q) = %v, want 0", raw, got)
		}
	}
	if got := ParseNumber(" 12.5 "); got != 12.5 {
		t.Fatalf("ParseNumber(12.5) = %v", got)
	}
	if got := ParseNumber("-4"); got != -4 {
		t.Fatalf("ParseNumber(-4) = %v", got)
	}
}

func TestParseNumber_OverflowIsInfinite(t *testing.T) {
	if got := ParseNumber("1e400"); !math.IsInf(got, 1) {
		t.Fatalf("ParseNumber(1e400) = %v, want +Inf", got)
	}
	if got := ParseNumber("-1e400"); !math.IsInf(got, -1) {
		t.Fatalf("ParseNumber(-1e400) = %v, want -Inf", got)
	}
	if got := ParseNumber("1e-400"); got != 0 {
		t.Fatalf("ParseNumber(1e-400) = %v, want 0", got)
	}

	out := Compute(Input{JarCost: ParseNumber("1e400"), WickCost: 5})
	if !math.IsInf(out.TotalCost, 1) {
		t.Fatalf("totalCost = %v, want +Inf", out.TotalCost)
	}
	if got := FormatCurrency(out.TotalCost); got != "₹0.00" {
		t.Fatalf("formatted total = %q, want ₹0.00", got)
	}
}

func TestParseFlag(t *testing.T) {
	for _, raw := range []string{"1", "true", "on", "TRUE"} {
		if !ParseFlag(raw) {
			t.Fatalf("ParseFlag(%q) = false", raw)
		}
	}
	for _, raw := range []string{"", "0", "false", "off"} {
		if ParseFlag(raw) {
			t.Fatalf("ParseFlag(%q) = true", raw)
		}
	}
}

func TestInputUnmarshal_LenientFields(t *testing.T) {
	raw := `{
		"name": "Lavender",
		"jar": 50,
		"waxGrams": "200",
		"wick": null,
		"fragPricePerL": "oops",
		"fragGrams": 6,
		"colorDrops": 10,
		"profitPct": 30,
		"gstPct": 18,
		"applyGst": "on"
	}`

	var in Input
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("unmarshal input: %v", err)
	}

	if in.Name != "Lavender" || in.JarCost != 50 || in.WaxGrams != 200 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.WickCost != 0 || in.FragrancePricePerLiter != 0 || in.PackagingBox != 0 {
		t.Fatalf("expected coerced zeros, got %+v", in)
	}
	if !in.ApplyGST {
		t.Fatalf("expected applyGst to be set")
	}
}

func TestInputMarshal_UsesSavedFieldNames(t *testing.T) {
	data, err := json.Marshal(Input{Name: "Rose", JarCost: 50, FragrancePricePerLiter: 1200, ApplyGST: true})
	if err != nil {
		t.Fatalf("marshal input: %v", err)
	}

	body := string(data)
	for _, key := range []string{`"name":"Rose"`, `"jar":50`, `"fragPricePerL":1200`, `"packRibbon":0`, `"applyGst":true`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}
}

func TestOutputMarshal_NonFiniteBecomesNull(t *testing.T) {
	data, err := json.Marshal(Output{TotalCost: math.Inf(1), WaxCost: math.NaN(), JarCost: 50})
	if err != nil {
		t.Fatalf("marshal output: %v", err)
	}

	body := string(data)
	for _, key := range []string{`"total":null`, `"waxCost":null`, `"jarCost":50`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}

	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if out.TotalCost != 0 || out.JarCost != 50 {
		t.Fatalf("unexpected decoded output: %+v", out)
	}
}

func TestInputUnmarshal_RejectsNonObject(t *testing.T) {
	var in Input
	if err := json.Unmarshal([]byte(`"not an object"`), &in); err == nil {
		t.Fatalf("expected error for non-object input")
	}
}
