package money

import "math"

// Cents is a monetary amount in integer minor units. Amounts are never
// represented as floats; every derived amount is floored to whole cents.
type Cents int64

// Bps is a rate in integer basis points. 10000 bps = 100%.
type Bps int64

// Full is the bps value representing 100%.
const Full Bps = 10000

// ClampCents floors a negative amount to zero.
func ClampCents(v Cents) Cents {
	if v < 0 {
		return 0
	}
	return v
}

// ClampBps restricts a rate to the valid [0, 10000] range.
func ClampBps(v Bps) Bps {
	if v < 0 {
		return 0
	}
	if v > Full {
		return Full
	}
	return v
}

// Share applies a bps rate to an amount: amount * rate / 10000, truncated
// toward zero. With non-negative inputs this is floor division.
func Share(amount Cents, rate Bps) Cents {
	return Cents(int64(amount) * int64(rate) / int64(Full))
}

// ExtractInclusive splits a rate-inclusive gross amount into the embedded
// part and the remaining net. The rate applies to the net base, so the part
// is gross * rate / (10000 + rate), floored. part + net == gross always.
func ExtractInclusive(gross Cents, rate Bps) (part, net Cents) {
	gross = ClampCents(gross)
	rate = ClampBps(rate)
	if gross == 0 || rate == 0 {
		return 0, gross
	}
	part = Cents(int64(gross) * int64(rate) / int64(Full+rate))
	return part, gross - part
}

// MulPct multiplies an amount by a percentage (e.g. 12.5 for 12.5%),
// flooring the result to whole cents.
func MulPct(amount Cents, pct float64) Cents {
	return Cents(math.Floor(float64(amount) * pct / 100))
}

// RatioBps expresses amount as basis points of base, truncated toward zero.
// A non-positive base yields 0. Amounts too large for exact integer math
// fall back to a float approximation instead of wrapping.
func RatioBps(amount, base Cents) Bps {
	if base <= 0 {
		return 0
	}
	const maxExact = math.MaxInt64 / int64(Full)
	if a := int64(amount); a > maxExact || a < -maxExact {
		return Bps(float64(amount) * float64(Full) / float64(base))
	}
	return Bps(int64(amount) * int64(Full) / int64(base))
}

// RoundUpTo rounds an amount up to the next multiple of step. Non-positive
// steps leave the amount untouched.
func RoundUpTo(v Cents, step Cents) Cents {
	if step <= 0 {
		return v
	}
	rem := v % step
	if rem == 0 {
		return v
	}
	if v < 0 {
		return v - rem
	}
	return v + step - rem
}
