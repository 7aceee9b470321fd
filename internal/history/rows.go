package history

import (
	"strconv"

	"github.com/Simplici0/candle-pricer/internal/pricing"
)

// Row is a saved calculation rendered for the history table.
type Row struct {
	Time           string `json:"time"`
	Name           string `json:"name"`
	Total          string `json:"total"`
	ProfitPercent  string `json:"profitPercent"`
	SellingPrice   string `json:"sellingPrice"`
	FinalPrice     string `json:"finalPrice"`
	WaxGrams       string `json:"waxGrams"`
	FragranceGrams string `json:"fragranceGrams"`
	ColorDrops     string `json:"colorDrops"`
}

// Rows renders records in order. Missing names and untaxed final prices show as "-".
func Rows(records []Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		row := Row{
			Time:           r.Timestamp,
			Name:           r.Inputs.Name,
			Total:          pricing.FormatCurrency(r.Outputs.TotalCost),
			ProfitPercent:  pricing.FormatPercent(r.Inputs.ProfitPercent) + "%",
			SellingPrice:   pricing.FormatCurrency(r.Outputs.SellingPrice),
			FinalPrice:     "-",
			WaxGrams:       quantity(r.Inputs.WaxGrams),
			FragranceGrams: quantity(r.Inputs.FragranceGrams),
			ColorDrops:     quantity(r.Inputs.ColorDrops),
		}
		if t, ok := r.Time(); ok {
			row.Time = t.Format("2006-01-02 15:04:05")
		}
		if row.Name == "" {
			row.Name = "-"
		}
		if r.Inputs.ApplyGST {
			row.FinalPrice = pricing.FormatCurrency(r.Outputs.FinalPrice)
		}
		rows = append(rows, row)
	}
	return rows
}

func quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
