package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Line is one labelled row of a calculation breakdown.
type Line struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Text   string  `json:"text"`
	Strong bool    `json:"strong,omitempty"`
}

// Breakdown lists the rows shown for a calculation, in display order.
// Tax rows appear only when GST is applied.
func Breakdown(in Input, out Output) []Line {
	lines := []Line{
		line("Wax Price", out.WaxCost, false),
		line("Fragrance Price", out.FragranceCost, false),
		line(fmt.Sprintf("Color Price (%s / drop)", FormatPerDrop(out.PricePerColorDrop)), out.ColorCost, false),
		line("Wick Cost", out.WickCost, false),
		line("Jar Price", out.JarCost, false),
		line("Packaging Subtotal", out.PackagingSubtotal, false),
		line("Additional Charges", out.AdditionalCharges, false),
		line("Total Cost", out.TotalCost, true),
		line(fmt.Sprintf("Profit (%s%%)", FormatPercent(in.ProfitPercent)), out.ProfitAmount, false),
		line("Selling Price (Excl. GST)", out.SellingPrice, true),
	}
	if in.ApplyGST {
		lines = append(lines,
			line(fmt.Sprintf("GST (%s%%)", FormatPercent(in.GSTPercent)), out.GSTAmount, false),
			line("Final Price (Incl. GST)", out.FinalPrice, true),
		)
	}
	return lines
}

// MarshalJSON writes a non-finite amount as null.
func (l Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return json.Marshal(struct {
		plain
		Amount number `json:"amount"`
	}{plain: plain(l), Amount: number(l.Amount)})
}

func line(label string, amount float64, strong bool) Line {
	return Line{Label: label, Amount: amount, Text: FormatCurrency(amount), Strong: strong}
}

// Summary renders a calculation as plain text suitable for the clipboard.
func Summary(in Input, out Output) string {
	name := in.Name
	if name == "" {
		name = "Unnamed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Candle: %s\n\n", name)
	fmt.Fprintf(&b, "Wax: %s\n", FormatCurrency(out.WaxCost))
	fmt.Fprintf(&b, "Fragrance: %s\n", FormatCurrency(out.FragranceCost))
	fmt.Fprintf(&b, "Color: %s\n", FormatCurrency(out.ColorCost))
	fmt.Fprintf(&b, "Wick: %s\n", FormatCurrency(out.WickCost))
	fmt.Fprintf(&b, "Jar: %s\n", FormatCurrency(out.JarCost))
	fmt.Fprintf(&b, "Packaging: %s\n", FormatCurrency(out.PackagingSubtotal))
	fmt.Fprintf(&b, "Additional: %s\n", FormatCurrency(out.AdditionalCharges))
	fmt.Fprintf(&b, "Total Cost: %s\n", FormatCurrency(out.TotalCost))
	fmt.Fprintf(&b, "Profit (%s%%): %s\n", FormatPercent(in.ProfitPercent), FormatCurrency(out.ProfitAmount))
	fmt.Fprintf(&b, "Selling Price: %s\n", FormatCurrency(out.SellingPrice))
	if in.ApplyGST {
		fmt.Fprintf(&b, "GST (%s%%): %s\n", FormatPercent(in.GSTPercent), FormatCurrency(out.GSTAmount))
		fmt.Fprintf(&b, "Final Price: %s", FormatCurrency(out.FinalPrice))
	}
	return b.String()
}
