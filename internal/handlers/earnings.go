package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

// DashboardReader builds the dashboard report.
type DashboardReader interface {
	Dashboard(ctx context.Context, rolling string) (*models.DashboardReport, error)
}

// TodaysEarningsReader builds today's earnings.
type TodaysEarningsReader interface {
	TodaysEarnings(ctx context.Context) (*models.TodayReport, error)
}

// MonthlyEarningsReader builds month buckets of a year.
type MonthlyEarningsReader interface {
	MonthlyEarnings(ctx context.Context, year int, month *int) (*models.MonthlyEarningsReport, error)
}

// LastMonthEarningsReader builds the previous month report.
type LastMonthEarningsReader interface {
	LastMonthEarnings(ctx context.Context) (*models.LastMonthReport, error)
}

// LastYearEarningsReader builds the previous year report.
type LastYearEarningsReader interface {
	LastYearEarnings(ctx context.Context) (*models.LastYearReport, error)
}

// PeriodEarningsReader builds the named period report.
type PeriodEarningsReader interface {
	PeriodEarnings(ctx context.Context, token string) (*models.PeriodReport, error)
}

// UserGrowthReader builds monthly sign-up counts.
type UserGrowthReader interface {
	MonthlyUserGrowth(ctx context.Context, year int) (*models.UserGrowthReport, error)
}

// CombinedReader builds sign-ups and top-ups per month.
type CombinedReader interface {
	MonthlyCombined(ctx context.Context, year int) (*models.CombinedReport, error)
}

// UserTransactionsReader builds a user's ledger report.
type UserTransactionsReader interface {
	UserTransactions(ctx context.Context, userID string) (*models.UserTransactionsReport, error)
}

// UsersSummaryReader builds per-user ledger totals.
type UsersSummaryReader interface {
	UsersWithSummary(ctx context.Context) (*models.UsersSummaryReport, error)
}

// WalletTotalsReader builds whole-ledger totals.
type WalletTotalsReader interface {
	WalletTotals(ctx context.Context) (*models.CategoryTotals, error)
}

// NewDashboardHandler returns an HTTP handler for the admin dashboard.
// @Summary Dashboard
// @Description Non-admin user count and game fee revenue over a rolling window
// @Tags admin
// @Produce json
// @Param period query string false "Rolling window, e.g. 7d" default(30d)
// @Success 200 {object} models.DashboardReport
// @Failure 401 {object} models.ReportErrorResponse "Unauthorized"
// @Failure 403 {object} models.ReportErrorResponse "Admin privileges required"
// @Failure 500 {object} models.ReportErrorResponse "Error fetching dashboard stats"
// @Router /admin/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rolling := r.URL.Query().Get("period")
		if rolling == "" {
			rolling = "30d"
		}

		report, err := svc.Dashboard(r.Context(), rolling)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewTodaysEarningsHandler returns an HTTP handler for today's earnings.
// @Summary Today's earnings
// @Tags admin
// @Produce json
// @Success 200 {object} models.TodayReport
// @Failure 500 {object} models.ReportErrorResponse "Error fetching today's earnings"
// @Router /admin/todays_earnings [get]
// @Security BearerAuth
func NewTodaysEarningsHandler(svc TodaysEarningsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.TodaysEarnings(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewMonthlyEarningsHandler returns an HTTP handler for monthly earnings.
// @Summary Monthly earnings
// @Description Month buckets of a year, or a single month
// @Tags admin
// @Produce json
// @Param year query int false "Year, current year when omitted"
// @Param month query int false "Month 1-12, all months when omitted"
// @Success 200 {object} models.MonthlyEarningsReport
// @Failure 400 {object} models.ReportErrorResponse "Month must be between 1 and 12"
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/monthly_earnings [get]
// @Security BearerAuth
func NewMonthlyEarningsHandler(svc MonthlyEarningsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, _, err := queryInt(r, "year")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid year")
			return
		}
		month, hasMonth, err := queryInt(r, "month")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Month must be between 1 and 12")
			return
		}
		var monthArg *int
		if hasMonth {
			monthArg = &month
		}

		report, err := svc.MonthlyEarnings(r.Context(), year, monthArg)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewLastMonthEarningsHandler returns an HTTP handler for last month's earnings.
// @Summary Last month's earnings
// @Tags admin
// @Produce json
// @Success 200 {object} models.LastMonthReport
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/last_month_earnings [get]
// @Security BearerAuth
func NewLastMonthEarningsHandler(svc LastMonthEarningsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.LastMonthEarnings(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewLastYearEarningsHandler returns an HTTP handler for last year's earnings.
// @Summary Last year's earnings
// @Tags admin
// @Produce json
// @Success 200 {object} models.LastYearReport
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/last_year_earnings [get]
// @Security BearerAuth
func NewLastYearEarningsHandler(svc LastYearEarningsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.LastYearEarnings(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewPeriodEarningsHandler returns an HTTP handler for earnings over a named period.
// @Summary Period earnings
// @Description Category totals, active users and new users over 1d, 7d, 30d, 6m or 1y
// @Tags admin
// @Produce json
// @Param period query string false "Period token" Enums(1d, 7d, 30d, 6m, 1y) default(30d)
// @Success 200 {object} models.PeriodReport
// @Failure 400 {object} models.ReportErrorResponse "Invalid period"
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/monthly_earnings_with_period [get]
// @Security BearerAuth
func NewPeriodEarningsHandler(svc PeriodEarningsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.PeriodEarnings(r.Context(), r.URL.Query().Get("period"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewUserGrowthHandler returns an HTTP handler for monthly user growth.
// @Summary Monthly user growth
// @Tags admin
// @Produce json
// @Param year query int false "Year, current year when omitted"
// @Success 200 {object} models.UserGrowthReport
// @Failure 400 {object} models.ReportErrorResponse "Invalid year"
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/monthly_user_growth [get]
// @Security BearerAuth
func NewUserGrowthHandler(svc UserGrowthReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, _, err := queryInt(r, "year")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid year")
			return
		}

		report, err := svc.MonthlyUserGrowth(r.Context(), year)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewCombinedHandler returns an HTTP handler for monthly combined data.
// @Summary Monthly combined data
// @Description Sign-ups and wallet top-ups for every month of a year
// @Tags admin
// @Produce json
// @Param year query int false "Year, current year when omitted"
// @Success 200 {object} models.CombinedReport
// @Failure 400 {object} models.ReportErrorResponse "Invalid year"
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/monthly_combined_data [get]
// @Security BearerAuth
func NewCombinedHandler(svc CombinedReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, _, err := queryInt(r, "year")
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid year")
			return
		}

		report, err := svc.MonthlyCombined(r.Context(), year)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewUserTransactionsHandler returns an HTTP handler for a user's ledger.
// @Summary User transactions
// @Tags admin
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} models.UserTransactionsReport
// @Success 200 {object} models.NoTransactionsResponse "User without transactions"
// @Failure 400 {object} models.ReportErrorResponse "Invalid User Id format"
// @Failure 500 {object} models.ReportErrorResponse "Error fetching transactions"
// @Router /admin/user/{user_id}/transactions [get]
// @Security BearerAuth
func NewUserTransactionsHandler(svc UserTransactionsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.UserTransactions(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		if report.TotalTransactions == 0 {
			writeJSON(w, http.StatusOK, models.NoTransactionsResponse{
				Message:      "No transactions found for this user",
				Transactions: []models.TransactionDB{},
			})
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewUsersSummaryHandler returns an HTTP handler for users with ledger totals.
// @Summary Users with transaction summary
// @Tags admin
// @Produce json
// @Success 200 {object} models.UsersSummaryReport
// @Failure 500 {object} models.ReportErrorResponse "Internal server error"
// @Router /admin/users_with_txn_summary [get]
// @Security BearerAuth
func NewUsersSummaryHandler(svc UsersSummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.UsersWithSummary(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewWalletTotalsHandler returns an HTTP handler for whole-ledger totals.
// @Summary All wallet data
// @Tags admin
// @Produce json
// @Success 200 {object} models.CategoryTotals
// @Failure 500 {object} models.ReportErrorResponse "Error fetching wallet data"
// @Router /admin/all_wallet_data [get]
// @Security BearerAuth
func NewWalletTotalsHandler(svc WalletTotalsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := svc.WalletTotals(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}
