package model

import "github.com/shopspring/decimal"

const (
	hastingsExponent = 24       // 1 SC = 10^24 hastings
	bytesPerTB       = 1e12     // decimal terabyte
	blocksPerMonth   = 144 * 30 // ~10 minute blocks
)

// HastingsToSC converts a hastings amount to SC
func HastingsToSC(hastings decimal.Decimal) decimal.Decimal {
	return hastings.Shift(-hastingsExponent)
}

// Convert converts a hastings amount into the currency
// the rate belongs to.
func Convert(hastings decimal.Decimal, rate float64) decimal.Decimal {
	return HastingsToSC(hastings).Mul(decimal.NewFromFloat(rate))
}

// StoragePerTBMonth converts a per byte per block storage price
// to a per TB per month price, still in hastings
func StoragePerTBMonth(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(bytesPerTB)).Mul(decimal.NewFromInt(blocksPerMonth))
}

// BandwidthPerTB converts a per byte bandwidth price
// to a per TB price, still in hastings
func BandwidthPerTB(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(bytesPerTB))
}

// Format renders amount with the precision and symbol of c.
// Example: 12.3456 with USD returns "$12.35"
func Format(amount decimal.Decimal, c Currency) string {
	if c.CurrencyType == Crypto {
		return amount.StringFixed(c.Precision) + " " + c.Symbol
	}

	return c.Symbol + amount.StringFixed(c.Precision)
}
