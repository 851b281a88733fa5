package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// CategorySums holds one summed amount per taxonomy category.
type CategorySums map[Category]decimal.Decimal

// NewCategorySums returns sums with every category set to zero.
func NewCategorySums() CategorySums {
	s := make(CategorySums, len(Categories))
	for _, c := range Categories {
		s[c] = decimal.Zero
	}
	return s
}

// Get returns the sum for c, zero when absent.
func (s CategorySums) Get(c Category) decimal.Decimal {
	if v, ok := s[c]; ok {
		return v
	}
	return decimal.Zero
}

// Add increases the sum of c by amount.
func (s CategorySums) Add(c Category, amount decimal.Decimal) {
	s[c] = s.Get(c).Add(amount)
}

// NetEarnings is the platform view: (wallet_topup + game_fee) - (winning + withdrawal).
func (s CategorySums) NetEarnings() decimal.Decimal {
	return s.Get(WalletTopup).Add(s.Get(GameFee)).
		Sub(s.Get(Winning).Add(s.Get(Withdrawal)))
}

// NetBalance is the player view: (wallet_topup + winning) - (withdrawal + game_fee).
func (s CategorySums) NetBalance() decimal.Decimal {
	return s.Get(WalletTopup).Add(s.Get(Winning)).
		Sub(s.Get(Withdrawal).Add(s.Get(GameFee)))
}

// Bucket is one aggregated group of ledger entries.
type Bucket struct {
	Date  string       // YYYY-MM-DD, set for day buckets
	Year  int          // set for month buckets
	Month int          // set for month buckets
	Sums  CategorySums // all four categories present
	Count int64        // number of ledger entries
}

// UserSummary is a user joined with the category sums of their whole ledger.
type UserSummary struct {
	User UserDB
	Sums CategorySums
}

// MonthCount is the number of users created in a calendar month.
type MonthCount struct {
	Year  int
	Month int
	Count int64
}

// MonthName returns the English month name, e.g. "January".
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// ShortMonthName returns the three letter month name, e.g. "Jan".
func ShortMonthName(month int) string {
	name := MonthName(month)
	if len(name) < 3 {
		return name
	}
	return name[:3]
}
