package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenuePoint is one day of the dashboard revenue series
// swagger:model RevenuePoint
type RevenuePoint struct {
	// example: 2024-03-01
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total" swaggertype:"number" example:"120.5"`
}

// DashboardReport summarises users and game fee revenue over a rolling window
// swagger:model DashboardReport
type DashboardReport struct {
	TotalUsers   int64           `json:"totalUsers" example:"42"`
	TotalRevenue decimal.Decimal `json:"totalRevenue" swaggertype:"number" example:"1250.5"`
	RevenueByDay []RevenuePoint  `json:"revenueByDay"`
}

// CategoryTotals are unwindowed or windowed category sums with a transaction count
// swagger:model CategoryTotals
type CategoryTotals struct {
	TotalWalletTopup  decimal.Decimal `json:"total_wallet_topup" swaggertype:"number"`
	TotalGameFee      decimal.Decimal `json:"total_game_fee" swaggertype:"number"`
	TotalWinning      decimal.Decimal `json:"total_winning" swaggertype:"number"`
	TotalWithdrawal   decimal.Decimal `json:"total_withdrawal" swaggertype:"number"`
	TotalTransactions int64           `json:"total_transactions"`
}

// NewCategoryTotals builds totals from sums.
func NewCategoryTotals(s CategorySums, count int64) CategoryTotals {
	return CategoryTotals{
		TotalWalletTopup:  s.Get(WalletTopup),
		TotalGameFee:      s.Get(GameFee),
		TotalWinning:      s.Get(Winning),
		TotalWithdrawal:   s.Get(Withdrawal),
		TotalTransactions: count,
	}
}

// TodayReport is today's category totals plus today's sign-ups
// swagger:model TodayReport
type TodayReport struct {
	CategoryTotals
	UsersAddedToday int64 `json:"users_added_today"`
}

// MonthlyEarning is one month bucket of the earnings reports
// swagger:model MonthlyEarning
type MonthlyEarning struct {
	Year             int             `json:"year" example:"2024"`
	Month            int             `json:"month" example:"3"`
	MonthName        string          `json:"month_name" example:"March"`
	WalletTopup      decimal.Decimal `json:"wallet_topup" swaggertype:"number"`
	GameFee          decimal.Decimal `json:"game_fee" swaggertype:"number"`
	Winning          decimal.Decimal `json:"winning" swaggertype:"number"`
	Withdrawal       decimal.Decimal `json:"withdrawal" swaggertype:"number"`
	NetEarnings      decimal.Decimal `json:"net_earnings" swaggertype:"number"`
	TransactionCount int64           `json:"transaction_count"`
}

// NewMonthlyEarning builds a month row from a bucket.
func NewMonthlyEarning(year, month int, s CategorySums, count int64) MonthlyEarning {
	return MonthlyEarning{
		Year:             year,
		Month:            month,
		MonthName:        MonthName(month),
		WalletTopup:      s.Get(WalletTopup),
		GameFee:          s.Get(GameFee),
		Winning:          s.Get(Winning),
		Withdrawal:       s.Get(Withdrawal),
		NetEarnings:      s.NetEarnings(),
		TransactionCount: count,
	}
}

// MonthlyEarningsReport lists month buckets of a year or of a single month
// swagger:model MonthlyEarningsReport
type MonthlyEarningsReport struct {
	Year         int              `json:"year" example:"2024"`
	Month        *int             `json:"month"`
	Data         []MonthlyEarning `json:"data"`
	TotalRecords int              `json:"total_records"`
}

// LastMonthData is the previous calendar month's earnings
// swagger:model LastMonthData
type LastMonthData struct {
	MonthlyEarning
	DaysInMonth int `json:"days_in_month" example:"29"`
}

// LastMonthReport compares against the current month
// swagger:model LastMonthReport
type LastMonthReport struct {
	CurrentMonth     int           `json:"current_month" example:"3"`
	CurrentYear      int           `json:"current_year" example:"2024"`
	CurrentMonthName string        `json:"current_month_name" example:"March"`
	LastMonthData    LastMonthData `json:"last_month_data"`
	HasData          bool          `json:"has_data"`
}

// YearMonthData is one month inside the last year report
// swagger:model YearMonthData
type YearMonthData struct {
	Month            int             `json:"month" example:"1"`
	MonthName        string          `json:"month_name" example:"January"`
	WalletTopup      decimal.Decimal `json:"wallet_topup" swaggertype:"number"`
	GameFee          decimal.Decimal `json:"game_fee" swaggertype:"number"`
	Winning          decimal.Decimal `json:"winning" swaggertype:"number"`
	Withdrawal       decimal.Decimal `json:"withdrawal" swaggertype:"number"`
	TransactionCount int64           `json:"transaction_count"`
}

// YearData is the yearly roll-up of the last year report
// swagger:model YearData
type YearData struct {
	Year              int             `json:"year" example:"2023"`
	TotalWalletTopup  decimal.Decimal `json:"total_wallet_topup" swaggertype:"number"`
	TotalGameFee      decimal.Decimal `json:"total_game_fee" swaggertype:"number"`
	TotalWinning      decimal.Decimal `json:"total_winning" swaggertype:"number"`
	TotalWithdrawal   decimal.Decimal `json:"total_withdrawal" swaggertype:"number"`
	NetEarnings       decimal.Decimal `json:"net_earnings" swaggertype:"number"`
	TotalTransactions int64           `json:"total_transactions"`
	MonthlyData       []YearMonthData `json:"monthly_data"`
}

// LastYearReport is the previous calendar year's earnings
// swagger:model LastYearReport
type LastYearReport struct {
	LastYear    int      `json:"last_year" example:"2023"`
	CurrentYear int      `json:"current_year" example:"2024"`
	Data        YearData `json:"data"`
	HasData     bool     `json:"has_data"`
}

// PeriodData holds the category sums of a named period
// swagger:model PeriodData
type PeriodData struct {
	WalletTopup      decimal.Decimal `json:"wallet_topup" swaggertype:"number"`
	GameFee          decimal.Decimal `json:"game_fee" swaggertype:"number"`
	Winning          decimal.Decimal `json:"winning" swaggertype:"number"`
	Withdrawal       decimal.Decimal `json:"withdrawal" swaggertype:"number"`
	NetEarnings      decimal.Decimal `json:"net_earnings" swaggertype:"number"`
	TransactionCount int64           `json:"transaction_count"`
}

// PeriodReport is earnings plus user growth over a named period
// swagger:model PeriodReport
type PeriodReport struct {
	Period      string          `json:"period" example:"30d"`
	StartDate   string          `json:"start_date" example:"2024-02-14T16:00:00+05:30"`
	EndDate     string          `json:"end_date" example:"2024-03-15T16:00:00+05:30"`
	ActiveUsers int64           `json:"active_users"`
	NewUsers    int64           `json:"new_users"`
	Revenue     decimal.Decimal `json:"revenue" swaggertype:"number"`
	Data        PeriodData      `json:"data"`
}

// UserGrowthMonth is the number of sign-ups in one month
// swagger:model UserGrowthMonth
type UserGrowthMonth struct {
	Year      int    `json:"year" example:"2024"`
	Month     int    `json:"month" example:"3"`
	MonthName string `json:"month_name" example:"March"`
	UserCount int64  `json:"user_count"`
}

// UserGrowthReport lists months with at least one sign-up
// swagger:model UserGrowthReport
type UserGrowthReport struct {
	Year       int               `json:"year" example:"2024"`
	Data       []UserGrowthMonth `json:"data"`
	TotalUsers int64             `json:"total_users"`
}

// CombinedMonth is sign-ups and top-up revenue of one month
// swagger:model CombinedMonth
type CombinedMonth struct {
	Month       string          `json:"month" example:"Jan"`
	MonthNumber int             `json:"month_number" example:"1"`
	Users       int64           `json:"users"`
	Revenue     decimal.Decimal `json:"revenue" swaggertype:"number"`
}

// CombinedReport always has twelve months
// swagger:model CombinedReport
type CombinedReport struct {
	Year int             `json:"year" example:"2024"`
	Data []CombinedMonth `json:"data"`
}

// TransactionSummary is the player view of a user's ledger
// swagger:model TransactionSummary
type TransactionSummary struct {
	TotalWalletTopup decimal.Decimal `json:"total_wallet_topup" swaggertype:"number"`
	TotalGameFee     decimal.Decimal `json:"total_game_fee" swaggertype:"number"`
	TotalWinning     decimal.Decimal `json:"total_winning" swaggertype:"number"`
	TotalWithdrawal  decimal.Decimal `json:"total_withdrawal" swaggertype:"number"`
	NetBalance       decimal.Decimal `json:"net_balance" swaggertype:"number"`
}

// UserTransactionsReport is a user's full ledger with its summary
// swagger:model UserTransactionsReport
type UserTransactionsReport struct {
	UserID            uuid.UUID          `json:"user_id"`
	TotalTransactions int                `json:"total_transactions"`
	Summary           TransactionSummary `json:"summary"`
	Transactions      []TransactionDB    `json:"transactions"`
}

// UserSummaryRow is one user of the users with summary report
// swagger:model UserSummaryRow
type UserSummaryRow struct {
	ID              uuid.UUID       `json:"_id"`
	Serial          int             `json:"sl" example:"1"`
	Name            string          `json:"name"`
	MobileNumber    *string         `json:"mobile_number"`
	CreatedAt       time.Time       `json:"created_at"`
	TotalCredit     decimal.Decimal `json:"total_credit" swaggertype:"number"`
	TotalGameFee    decimal.Decimal `json:"total_game_fee" swaggertype:"number"`
	TotalWinning    decimal.Decimal `json:"total_winning" swaggertype:"number"`
	TotalWithdrawal decimal.Decimal `json:"total_withdrawal" swaggertype:"number"`
	NetBalance      decimal.Decimal `json:"net_balance" swaggertype:"number"`
}

// UsersSummaryReport lists every non-admin user with ledger totals
// swagger:model UsersSummaryReport
type UsersSummaryReport struct {
	Data       []UserSummaryRow `json:"data"`
	TotalUsers int              `json:"total_users"`
}
