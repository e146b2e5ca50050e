package order

import "github.com/shopspring/decimal"

// DefaultCurrencySymbol is used when the caller does not supply one.
const DefaultCurrencySymbol = "₾"

// FormattedTotals holds display strings for a totals record. Formatting is a
// presentation concern only; no business logic lives here.
type FormattedTotals struct {
	Subtotal     string `json:"subtotal"`
	VAT          string `json:"vat"`
	Shipping     string `json:"shipping"`
	PlatformFee  string `json:"platformFee"`
	AffiliateFee string `json:"affiliateFee"`
	Total        string `json:"total"`
	NetSeller    string `json:"netSeller"`
}

// FormatTotals renders a totals record with a currency symbol and two
// decimal places.
func FormatTotals(t Totals, symbol string) FormattedTotals {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return FormattedTotals{
		Subtotal:     formatCents(int64(t.Subtotal), symbol),
		VAT:          formatCents(int64(t.VATAmount), symbol),
		Shipping:     formatCents(int64(t.ShippingCost), symbol),
		PlatformFee:  formatCents(int64(t.PlatformFee), symbol),
		AffiliateFee: formatCents(int64(t.AffiliateFee), symbol),
		Total:        formatCents(int64(t.Total), symbol),
		NetSeller:    formatCents(int64(t.NetSeller), symbol),
	}
}

func formatCents(cents int64, symbol string) string {
	return symbol + decimal.New(cents, -2).StringFixed(2)
}
