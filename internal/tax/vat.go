package tax

import "github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"

// Extraction is the result of splitting a tax-inclusive price.
type Extraction struct {
	VATAmount money.Cents `json:"vatAmountCents"`
	NetAmount money.Cents `json:"netAmountCents"`
}

// ExtractInclusive pulls the embedded VAT out of a tax-inclusive price.
// The rate applies to the tax-exclusive base, so for an 1800 bps rate the
// VAT share is price * 1800 / 11800, floored. VATAmount + NetAmount always
// equals the (clamped) input price.
func ExtractInclusive(price money.Cents, rate money.Bps) Extraction {
	vat, net := money.ExtractInclusive(price, rate)
	return Extraction{VATAmount: vat, NetAmount: net}
}
