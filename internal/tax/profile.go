package tax

import (
	"github.com/google/uuid"

	"github.com/kintsurashviligaga-ops/avatar-g-engine/internal/money"
)

// Status describes whether the store settles VAT with the tax authority.
type Status string

const (
	// StatusVATPayer marks a store registered as a VAT payer.
	StatusVATPayer Status = "vat_payer"
	// StatusNonVATPayer marks a store outside the VAT regime.
	StatusNonVATPayer Status = "non_vat_payer"
)

const (
	// DefaultRateBps is the VAT rate applied to newly provisioned stores.
	DefaultRateBps money.Bps = 1800
	// DefaultResidency is the tax residency applied to newly provisioned stores.
	DefaultResidency = "GE"
)

// Profile captures the tax configuration of a store. Profiles are value
// records: updates produce a new profile, existing ones are never mutated.
type Profile struct {
	StoreID          uuid.UUID `json:"store_id"`
	Status           Status    `json:"tax_status"`
	VATEnabled       bool      `json:"vat_enabled"`
	RateBps          money.Bps `json:"vat_rate_bps"`
	RegistrationNo   *string   `json:"vat_registration_no"`
	PricesIncludeVAT bool      `json:"prices_include_vat"`
	ResidencyCountry string    `json:"tax_residency_country"`
	LegalEntityType  *string   `json:"legal_entity_type"`
}

// DefaultProfile returns the profile a store receives when it is provisioned.
func DefaultProfile(storeID uuid.UUID) Profile {
	return Profile{
		StoreID:          storeID,
		Status:           StatusNonVATPayer,
		VATEnabled:       false,
		RateBps:          DefaultRateBps,
		PricesIncludeVAT: true,
		ResidencyCountry: DefaultResidency,
	}
}

// IsVATEnabled maps a tax status to the matching vat_enabled flag.
func IsVATEnabled(s Status) bool {
	return s == StatusVATPayer
}

// Validation reports a business-rule check outcome. It is a record, not an
// error: callers decide how to act on an invalid result.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateConsistency checks that tax_status and vat_enabled agree. An
// inconsistent profile is rejected, never silently corrected.
func (p Profile) ValidateConsistency() Validation {
	var errs []string
	if p.Status == StatusVATPayer && !p.VATEnabled {
		errs = append(errs, "tax_status is vat_payer but vat_enabled is false")
	}
	if p.Status != StatusVATPayer && p.VATEnabled {
		errs = append(errs, "vat_enabled is true but tax_status is not vat_payer")
	}
	if p.RateBps < 0 || p.RateBps > money.Full {
		errs = append(errs, "vat_rate_bps must be between 0 and 10000")
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}
