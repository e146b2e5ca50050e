package order

import (
	"fmt"
	"strings"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/tax"
)

// Input carries everything needed to price a single order. Negative money
// and rate inputs are clamped to zero before computation.
type Input struct {
	Subtotal        money.Cents `json:"subtotalCents"`
	ShippingCost    money.Cents `json:"shippingCostCents"`
	PlatformFeeBps  money.Bps   `json:"platformFeeBps"`
	AffiliateFeeBps money.Bps   `json:"affiliateFeeBps"`
	BuyerCountry    string      `json:"buyerCountryCode"`
	Profile         tax.Profile `json:"taxProfile"`
}

// Breakdown mirrors the totals for display purposes.
type Breakdown struct {
	Gross        money.Cents `json:"gross"`
	VATTax       money.Cents `json:"vatTax"`
	PlatformFee  money.Cents `json:"platformFee"`
	AffiliateFee money.Cents `json:"affiliateFee"`
	Shipping     money.Cents `json:"shipping"`
	Total        money.Cents `json:"total"`
}

// Totals is the validated, displayable result of an order calculation.
// Prices are tax-inclusive, so VAT is an extraction from the subtotal, not
// an addition on top of it.
type Totals struct {
	Subtotal     money.Cents `json:"subtotalCents"`
	VATAmount    money.Cents `json:"vatAmountCents"`
	VATRateBps   money.Bps   `json:"vatRateBps"`
	VATEnabled   bool        `json:"vatEnabled"`
	ShippingCost money.Cents `json:"shippingCostCents"`
	PlatformFee  money.Cents `json:"platformFeeCents"`
	AffiliateFee money.Cents `json:"affiliateFeeCents"`
	Total        money.Cents `json:"totalCents"`
	NetSeller    money.Cents `json:"netSellerCents"`
	Breakdown    Breakdown   `json:"breakdown"`
}

// vatApplies reports whether the order falls inside the store's home VAT
// jurisdiction. Cross-border buyers are outside of it in this model.
func vatApplies(in Input) bool {
	return in.Profile.Status == tax.StatusVATPayer &&
		in.Profile.VATEnabled &&
		strings.EqualFold(strings.TrimSpace(in.BuyerCountry), strings.TrimSpace(in.Profile.ResidencyCountry))
}

// Compute aggregates subtotal, shipping, platform fee, affiliate fee and VAT
// into order totals. Fees are floored bps shares of the subtotal; the total
// is subtotal + shipping + fees, while VAT stays inside the subtotal.
func Compute(in Input) Totals {
	subtotal := money.ClampCents(in.Subtotal)
	shipping := money.ClampCents(in.ShippingCost)
	platformBps := money.ClampBps(in.PlatformFeeBps)
	affiliateBps := money.ClampBps(in.AffiliateFeeBps)

	var vatAmount money.Cents
	var vatRate money.Bps
	vatEnabled := false
	if vatApplies(in) {
		vatRate = money.ClampBps(in.Profile.RateBps)
		vatAmount = tax.ExtractInclusive(subtotal, vatRate).VATAmount
		vatEnabled = true
	}

	platformFee := money.Share(subtotal, platformBps)
	affiliateFee := money.Share(subtotal, affiliateBps)
	total := subtotal + shipping + platformFee + affiliateFee

	// Shipping is pass-through and excluded from the seller's take. Extreme
	// fee rates can push the remainder below zero; the seller never owes.
	netSeller := money.ClampCents(subtotal - vatAmount - platformFee - affiliateFee)

	return Totals{
		Subtotal:     subtotal,
		VATAmount:    vatAmount,
		VATRateBps:   vatRate,
		VATEnabled:   vatEnabled,
		ShippingCost: shipping,
		PlatformFee:  platformFee,
		AffiliateFee: affiliateFee,
		Total:        total,
		NetSeller:    netSeller,
		Breakdown: Breakdown{
			Gross:        subtotal,
			VATTax:       vatAmount,
			PlatformFee:  platformFee,
			AffiliateFee: affiliateFee,
			Shipping:     shipping,
			Total:        total,
		},
	}
}

// Validation reports the outcome of checking a totals record.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks a totals record for negative components and the total
// identity. It makes no assumption that the record came from Compute, so it
// can vet externally built or legacy records.
func Validate(t Totals) Validation {
	var errs []string
	for _, c := range []struct {
		name  string
		value money.Cents
	}{
		{"subtotalCents", t.Subtotal},
		{"vatAmountCents", t.VATAmount},
		{"shippingCostCents", t.ShippingCost},
		{"platformFeeCents", t.PlatformFee},
		{"affiliateFeeCents", t.AffiliateFee},
		{"totalCents", t.Total},
	} {
		if c.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative", c.name))
		}
	}
	if sum := t.Subtotal + t.ShippingCost + t.PlatformFee + t.AffiliateFee; t.Total != sum {
		errs = append(errs, fmt.Sprintf("totalCents %d does not match subtotal + shipping + fees %d", t.Total, sum))
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}
