package usecases

// Buyer-side pricing constants. CommissionRate is the flat marketplace
// commission; FixedFee is the payment-processing fee in currency units (COP).
const (
	CommissionRate = 0.01
	FixedFee       = 900.0
)

// PriceBreakdown itemizes what the buyer is charged
type PriceBreakdown struct {
	BasePrice  float64 `json:"basePrice"`
	Commission float64 `json:"commission"`
	FixedFee   float64 `json:"fixedFee"`
	TotalPrice float64 `json:"totalPrice"`
}

// CalculatePrice computes the total charge for quantity units at the given
// unit price. No intermediate rounding; callers round only at the
// display/format boundary.
func CalculatePrice(quantity int64, pricePerToken float64) PriceBreakdown {
	basePrice := float64(quantity) * pricePerToken
	commission := basePrice * CommissionRate
	return PriceBreakdown{
		BasePrice:  basePrice,
		Commission: commission,
		FixedFee:   FixedFee,
		TotalPrice: basePrice + commission + FixedFee,
	}
}
