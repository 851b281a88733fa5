package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/period"
	"github.com/shopspring/decimal"
)

// DefaultPeriodToken is used by the period report when no token is given.
const DefaultPeriodToken = "30d"

// LedgerReader aggregates the ledger and lists a user's entries.
type LedgerReader interface {
	LedgerAggregator
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// ReportService builds the admin earnings and growth reports.
type ReportService struct {
	engine   *Engine
	ledger   LedgerReader
	resolver *period.Resolver
}

// NewReportService creates a ReportService. Every window is resolved
// against resolver's clock.
func NewReportService(ledger LedgerReader, users UserAggregator, resolver *period.Resolver) *ReportService {
	return &ReportService{
		engine:   NewEngine(ledger, users),
		ledger:   ledger,
		resolver: resolver,
	}
}

// Dashboard reports non-admin users and game fee revenue over a rolling "<N>d" window.
func (s *ReportService) Dashboard(ctx context.Context, rolling string) (*models.DashboardReport, error) {
	w := s.resolver.RollingDays(rolling)

	totalUsers, err := s.engine.CountUsers(ctx, models.UserFilter{ExcludeRole: models.RoleAdmin})
	if err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return nil, storeError("Error fetching dashboard stats", err)
	}

	q := LedgerQuery{Window: &w, Category: models.GameFee}
	total, err := s.engine.Total(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to sum revenue", "error", err)
		return nil, storeError("Error fetching dashboard stats", err)
	}

	q.GroupBy = GroupByDay
	days, err := s.engine.Aggregate(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to aggregate revenue by day", "error", err)
		return nil, storeError("Error fetching dashboard stats", err)
	}

	series := make([]models.RevenuePoint, 0, len(days))
	for _, d := range days {
		series = append(series, models.RevenuePoint{Date: d.Date, Total: d.Sums.Get(models.GameFee)})
	}

	return &models.DashboardReport{
		TotalUsers:   totalUsers,
		TotalRevenue: total.Sums.Get(models.GameFee),
		RevenueByDay: series,
	}, nil
}

// TodaysEarnings reports category totals and sign-ups of the current UTC day.
func (s *ReportService) TodaysEarnings(ctx context.Context) (*models.TodayReport, error) {
	w := s.resolver.Today()

	total, err := s.engine.Total(ctx, LedgerQuery{Window: &w})
	if err != nil {
		logger.Log.Errorw("failed to aggregate today's ledger", "error", err)
		return nil, storeError("Error fetching today's earnings", err)
	}

	added, err := s.engine.CountUsers(ctx, models.UserFilter{From: &w.Start, To: &w.End})
	if err != nil {
		logger.Log.Errorw("failed to count today's users", "error", err)
		return nil, storeError("Error fetching today's earnings", err)
	}

	return &models.TodayReport{
		CategoryTotals:  models.NewCategoryTotals(total.Sums, total.Count),
		UsersAddedToday: added,
	}, nil
}

// MonthlyEarnings reports month buckets of year, or only month when it is
// given. Year zero means the current year.
func (s *ReportService) MonthlyEarnings(ctx context.Context, year int, month *int) (*models.MonthlyEarningsReport, error) {
	m := 0
	if month != nil {
		if *month < 1 || *month > 12 {
			return nil, invalidArgument("Month must be between 1 and 12")
		}
		m = *month
	}
	cal, err := s.resolver.Calendar(year, m)
	if err != nil {
		return nil, invalidArgument("Month must be between 1 and 12")
	}

	buckets, err := s.engine.Aggregate(ctx, LedgerQuery{Window: &cal.Window, GroupBy: GroupByMonth})
	if err != nil {
		logger.Log.Errorw("failed to aggregate monthly earnings", "year", cal.Year, "month", cal.Month, "error", err)
		return nil, storeError("Error", err)
	}

	data := make([]models.MonthlyEarning, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, models.NewMonthlyEarning(b.Year, b.Month, b.Sums, b.Count))
	}

	report := &models.MonthlyEarningsReport{
		Year:         cal.Year,
		Data:         data,
		TotalRecords: len(data),
	}
	if cal.Month != 0 {
		m := cal.Month
		report.Month = &m
	}
	return report, nil
}

// LastMonthEarnings reports the previous calendar month. An empty month
// yields a zero record with has_data false.
func (s *ReportService) LastMonthEarnings(ctx context.Context) (*models.LastMonthReport, error) {
	now := s.resolver.Now()
	cal := s.resolver.LastMonth()

	total, err := s.engine.Total(ctx, LedgerQuery{Window: &cal.Window})
	if err != nil {
		logger.Log.Errorw("failed to aggregate last month", "error", err)
		return nil, storeError("Error fetching last month earnings", err)
	}

	return &models.LastMonthReport{
		CurrentMonth:     int(now.Month()),
		CurrentYear:      now.Year(),
		CurrentMonthName: models.MonthName(int(now.Month())),
		LastMonthData: models.LastMonthData{
			MonthlyEarning: models.NewMonthlyEarning(cal.Year, cal.Month, total.Sums, total.Count),
			DaysInMonth:    period.DaysIn(cal.Year, cal.Month),
		},
		HasData: total.Count > 0,
	}, nil
}

// LastYearEarnings reports the previous calendar year with its month breakdown.
func (s *ReportService) LastYearEarnings(ctx context.Context) (*models.LastYearReport, error) {
	now := s.resolver.Now()
	cal := s.resolver.LastYear()

	buckets, err := s.engine.Aggregate(ctx, LedgerQuery{Window: &cal.Window, GroupBy: GroupByMonth})
	if err != nil {
		logger.Log.Errorw("failed to aggregate last year", "error", err)
		return nil, storeError("Error fetching last year earnings", err)
	}

	sums := models.NewCategorySums()
	var count int64
	months := make([]models.YearMonthData, 0, len(buckets))
	for _, b := range buckets {
		for _, c := range models.Categories {
			sums.Add(c, b.Sums.Get(c))
		}
		count += b.Count
		months = append(months, models.YearMonthData{
			Month:            b.Month,
			MonthName:        models.MonthName(b.Month),
			WalletTopup:      b.Sums.Get(models.WalletTopup),
			GameFee:          b.Sums.Get(models.GameFee),
			Winning:          b.Sums.Get(models.Winning),
			Withdrawal:       b.Sums.Get(models.Withdrawal),
			TransactionCount: b.Count,
		})
	}

	return &models.LastYearReport{
		LastYear:    cal.Year,
		CurrentYear: now.Year(),
		Data: models.YearData{
			Year:              cal.Year,
			TotalWalletTopup:  sums.Get(models.WalletTopup),
			TotalGameFee:      sums.Get(models.GameFee),
			TotalWinning:      sums.Get(models.Winning),
			TotalWithdrawal:   sums.Get(models.Withdrawal),
			NetEarnings:       sums.NetEarnings(),
			TotalTransactions: count,
			MonthlyData:       months,
		},
		HasData: len(buckets) > 0,
	}, nil
}

// PeriodEarnings reports earnings, active payers and verified sign-ups over
// a named period token. An empty token means DefaultPeriodToken.
func (s *ReportService) PeriodEarnings(ctx context.Context, token string) (*models.PeriodReport, error) {
	if token == "" {
		token = DefaultPeriodToken
	}
	w, err := s.resolver.Named(token)
	if err != nil {
		return nil, invalidArgument("Invalid period")
	}

	total, err := s.engine.Total(ctx, LedgerQuery{Window: &w})
	if err != nil {
		logger.Log.Errorw("failed to aggregate period", "period", token, "error", err)
		return nil, storeError("Error", err)
	}

	active, err := s.engine.ActiveUsers(ctx, w)
	if err != nil {
		logger.Log.Errorw("failed to count active users", "period", token, "error", err)
		return nil, storeError("Error", err)
	}

	newUsers, err := s.engine.CountUsers(ctx, models.UserFilter{
		Role:         models.RoleUser,
		VerifiedOnly: true,
		From:         &w.Start,
		To:           &w.End,
	})
	if err != nil {
		logger.Log.Errorw("failed to count new users", "period", token, "error", err)
		return nil, storeError("Error", err)
	}

	net := total.Sums.NetEarnings()
	return &models.PeriodReport{
		Period:      token,
		StartDate:   w.Start.In(period.IST).Format(time.RFC3339),
		EndDate:     w.End.In(period.IST).Format(time.RFC3339),
		ActiveUsers: active,
		NewUsers:    newUsers,
		Revenue:     net,
		Data: models.PeriodData{
			WalletTopup:      total.Sums.Get(models.WalletTopup),
			GameFee:          total.Sums.Get(models.GameFee),
			Winning:          total.Sums.Get(models.Winning),
			Withdrawal:       total.Sums.Get(models.Withdrawal),
			NetEarnings:      net,
			TransactionCount: total.Count,
		},
	}, nil
}

func (s *ReportService) growth(ctx context.Context, year int) (period.Calendar, []models.MonthCount, error) {
	cal, err := s.resolver.Calendar(year, 0)
	if err != nil {
		return period.Calendar{}, nil, invalidArgument("Invalid year")
	}
	counts, err := s.engine.UsersByMonth(ctx, models.UserFilter{
		ExcludeRole: models.RoleAdmin,
		From:        &cal.Start,
		To:          &cal.End,
	})
	if err != nil {
		logger.Log.Errorw("failed to aggregate user growth", "year", cal.Year, "error", err)
		return period.Calendar{}, nil, storeError("Error", err)
	}
	return cal, counts, nil
}

// MonthlyUserGrowth reports non-admin sign-ups per month of year. Months
// without sign-ups are left out.
func (s *ReportService) MonthlyUserGrowth(ctx context.Context, year int) (*models.UserGrowthReport, error) {
	cal, counts, err := s.growth(ctx, year)
	if err != nil {
		return nil, err
	}

	var total int64
	data := make([]models.UserGrowthMonth, 0, len(counts))
	for _, c := range counts {
		total += c.Count
		data = append(data, models.UserGrowthMonth{
			Year:      c.Year,
			Month:     c.Month,
			MonthName: models.MonthName(c.Month),
			UserCount: c.Count,
		})
	}

	return &models.UserGrowthReport{Year: cal.Year, Data: data, TotalUsers: total}, nil
}

// MonthlyCombined reports sign-ups and wallet top-ups for all twelve months of year.
func (s *ReportService) MonthlyCombined(ctx context.Context, year int) (*models.CombinedReport, error) {
	cal, counts, err := s.growth(ctx, year)
	if err != nil {
		return nil, err
	}

	buckets, err := s.engine.Aggregate(ctx, LedgerQuery{
		Window:   &cal.Window,
		Category: models.WalletTopup,
		GroupBy:  GroupByMonth,
	})
	if err != nil {
		logger.Log.Errorw("failed to aggregate top-ups", "year", cal.Year, "error", err)
		return nil, storeError("Error", err)
	}

	users := make(map[int]int64, len(counts))
	for _, c := range counts {
		users[c.Month] = c.Count
	}
	revenue := make(map[int]models.Bucket, len(buckets))
	for _, b := range buckets {
		revenue[b.Month] = b
	}

	data := make([]models.CombinedMonth, 0, 12)
	for m := 1; m <= 12; m++ {
		row := models.CombinedMonth{
			Month:       models.ShortMonthName(m),
			MonthNumber: m,
			Users:       users[m],
			Revenue:     decimal.Zero,
		}
		if b, ok := revenue[m]; ok {
			row.Revenue = b.Sums.Get(models.WalletTopup)
		}
		data = append(data, row)
	}

	return &models.CombinedReport{Year: cal.Year, Data: data}, nil
}

// UserTransactions returns a user's whole ledger with its player view summary.
// A user without entries yields a report with no transactions.
func (s *ReportService) UserTransactions(ctx context.Context, userID string) (*models.UserTransactionsReport, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, invalidArgument("Invalid User Id format")
	}

	txns, err := s.ledger.FindByUserID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to fetch user transactions", "userID", id, "error", err)
		return nil, storeError("Error fetching transactions", err)
	}

	sums := models.NewCategorySums()
	for _, t := range txns {
		sums.Add(t.Type, t.Amount)
	}
	if txns == nil {
		txns = []models.TransactionDB{}
	}

	return &models.UserTransactionsReport{
		UserID:            id,
		TotalTransactions: len(txns),
		Summary: models.TransactionSummary{
			TotalWalletTopup: sums.Get(models.WalletTopup),
			TotalGameFee:     sums.Get(models.GameFee),
			TotalWinning:     sums.Get(models.Winning),
			TotalWithdrawal:  sums.Get(models.Withdrawal),
			NetBalance:       sums.NetBalance(),
		},
		Transactions: txns,
	}, nil
}

// UsersWithSummary lists every non-admin user, oldest first, with the totals
// of their whole ledger and a 1-based serial number.
func (s *ReportService) UsersWithSummary(ctx context.Context) (*models.UsersSummaryReport, error) {
	users, err := s.engine.FindUsers(ctx, models.UserFilter{ExcludeRole: models.RoleAdmin})
	if err != nil {
		logger.Log.Errorw("failed to find users", "error", err)
		return nil, storeError("Error fetching user summaries", err)
	}

	sums, err := s.engine.SumsByUser(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate ledger by user", "error", err)
		return nil, storeError("Error fetching user summaries", err)
	}

	rows := make([]models.UserSummaryRow, 0, len(users))
	for i, u := range users {
		us, ok := sums[u.UserID]
		if !ok {
			us = models.NewCategorySums()
		}
		rows = append(rows, models.UserSummaryRow{
			ID:              u.UserID,
			Serial:          i + 1,
			Name:            u.Name,
			MobileNumber:    u.MobileNumber,
			CreatedAt:       u.CreatedAt,
			TotalCredit:     us.Get(models.WalletTopup),
			TotalGameFee:    us.Get(models.GameFee),
			TotalWinning:    us.Get(models.Winning),
			TotalWithdrawal: us.Get(models.Withdrawal),
			NetBalance:      us.NetBalance(),
		})
	}

	return &models.UsersSummaryReport{Data: rows, TotalUsers: len(rows)}, nil
}

// WalletTotals reports category totals over the whole ledger.
func (s *ReportService) WalletTotals(ctx context.Context) (*models.CategoryTotals, error) {
	total, err := s.engine.Total(ctx, LedgerQuery{})
	if err != nil {
		logger.Log.Errorw("failed to aggregate ledger", "error", err)
		return nil, storeError("Error fetching wallet data", err)
	}
	totals := models.NewCategoryTotals(total.Sums, total.Count)
	return &totals, nil
}
