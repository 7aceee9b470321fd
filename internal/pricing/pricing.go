package pricing

const (
	// DropsPerML is the calibration used for liquid coloring: drops per milliliter.
	DropsPerML = 20
	// ColorPricePer100ML is the cost of 100 mL of coloring agent.
	ColorPricePer100ML = 149

	waxRateA = 170.0
	waxRateB = 175.0

	// DefaultGSTPercent is the tax rate a fresh form starts with.
	DefaultGSTPercent = 18
)

// Input represents the raw-material quantities and costs of one candle.
type Input struct {
	Name                   string
	JarCost                float64
	WickCost               float64
	AdditionalCharges      float64
	WaxGrams               float64
	FragrancePricePerLiter float64
	FragranceGrams         float64
	ColorDrops             float64
	PackagingBox           float64
	PackagingSticker       float64
	PackagingRibbon        float64
	ProfitPercent          float64
	GSTPercent             float64
	ApplyGST               bool
}

// Output contains every line item and roll-up of the pricing calculation.
type Output struct {
	WaxCost           float64
	FragranceCost     float64
	ColorCost         float64
	JarCost           float64
	WickCost          float64
	PackagingSubtotal float64
	AdditionalCharges float64
	TotalCost         float64
	ProfitAmount      float64
	SellingPrice      float64
	GSTAmount         float64
	FinalPrice        float64
	PricePerColorDrop float64
}

// DefaultInput returns the state of a freshly reset form.
func DefaultInput() Input {
	return Input{GSTPercent: DefaultGSTPercent}
}

// PricePerColorDrop is the cost of a single drop of coloring.
func PricePerColorDrop() float64 {
	pricePerML := ColorPricePer100ML / 100.0
	return pricePerML / DropsPerML
}

// Compute derives costs and prices from in. It has no failure modes.
func Compute(in Input) Output {
	half := in.WaxGrams / 2
	waxCost := (half/1000.0)*waxRateA + (half/1000.0)*waxRateB

	pricePerGram := in.FragrancePricePerLiter / 1000.0
	fragranceCost := pricePerGram * in.FragranceGrams

	pricePerDrop := PricePerColorDrop()
	colorCost := pricePerDrop * in.ColorDrops

	packaging := in.PackagingBox + in.PackagingSticker + in.PackagingRibbon

	total := in.JarCost + in.WickCost + waxCost + fragranceCost + colorCost + packaging + in.AdditionalCharges

	// Negative markup is treated as no markup. GST gets no such clamp.
	profit := 0.0
	if in.ProfitPercent > 0 {
		profit = total * in.ProfitPercent / 100.0
	}
	selling := total + profit

	gst := 0.0
	if in.ApplyGST {
		gst = selling * in.GSTPercent / 100.0
	}

	return Output{
		WaxCost:           waxCost,
		FragranceCost:     fragranceCost,
		ColorCost:         colorCost,
		JarCost:           in.JarCost,
		WickCost:          in.WickCost,
		PackagingSubtotal: packaging,
		AdditionalCharges: in.AdditionalCharges,
		TotalCost:         total,
		ProfitAmount:      profit,
		SellingPrice:      selling,
		GSTAmount:         gst,
		FinalPrice:        selling + gst,
		PricePerColorDrop: pricePerDrop,
	}
}
