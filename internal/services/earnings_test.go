package services_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/period"
	"github.com/sbilibin2017/gw-gaming-platform/internal/pipeline"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T, now time.Time) (*services.ReportService, *services.MockLedgerReader, *services.MockUserAggregator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledger := services.NewMockLedgerReader(ctrl)
	users := services.NewMockUserAggregator(ctrl)
	svc := services.NewReportService(ledger, users, period.NewResolver(period.FixedClock(now)))
	return svc, ledger, users
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

var march15 = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestReportService_Dashboard(t *testing.T) {
	svc, ledger, users := newReportService(t, march15)

	users.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(42), nil)
	gomock.InOrder(
		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p pipeline.Pipeline) ([]pipeline.Row, error) {
				_, args := compileOn(t, "user_transactions", p)
				assert.Equal(t, march15.AddDate(0, 0, -7), args[len(args)-3])
				assert.Equal(t, "game_fee", args[len(args)-1])
				return []pipeline.Row{{"game_fee": "12.50", "transaction_count": int64(2)}}, nil
			}),
		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
			{"date": "2024-03-14", "game_fee": "2.50", "transaction_count": int64(1)},
			{"date": "2024-03-10", "game_fee": "10", "transaction_count": int64(1)},
		}, nil),
	)

	report, err := svc.Dashboard(context.Background(), "7d")
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.TotalUsers)
	assertDecimal(t, "12.5", report.TotalRevenue)
	require.Len(t, report.RevenueByDay, 2)
	assert.Equal(t, "2024-03-10", report.RevenueByDay[0].Date)
	assertDecimal(t, "10", report.RevenueByDay[0].Total)
}

func TestReportService_TodaysEarnings(t *testing.T) {
	svc, ledger, users := newReportService(t, march15)

	ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
		{"wallet_topup": "100", "game_fee": "30", "winning": "0", "withdrawal": "0", "transaction_count": int64(2)},
	}, nil)
	users.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m pipeline.Match) (int64, error) {
			_, args, err := pipeline.CompileMatch(m)
			require.NoError(t, err)
			assert.Equal(t, []any{
				time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			}, args)
			return 3, nil
		})

	report, err := svc.TodaysEarnings(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "100", report.TotalWalletTopup)
	assertDecimal(t, "30", report.TotalGameFee)
	assertDecimal(t, "0", report.TotalWinning)
	assertDecimal(t, "0", report.TotalWithdrawal)
	assert.Equal(t, int64(2), report.TotalTransactions)
	assert.Equal(t, int64(3), report.UsersAddedToday)
}

func TestReportService_TodaysEarnings_StoreFailure(t *testing.T) {
	svc, ledger, _ := newReportService(t, march15)

	ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := svc.TodaysEarnings(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrStoreFailure)
	assert.True(t, strings.HasPrefix(err.Error(), "Error fetching today's earnings: "))
	assert.Contains(t, err.Error(), "connection reset")
}

func intPtr(v int) *int {
	return &v
}

func TestReportService_MonthlyEarnings(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		t.Run("invalid month "+strconv.Itoa(month), func(t *testing.T) {
			svc, _, _ := newReportService(t, march15)

			_, err := svc.MonthlyEarnings(context.Background(), 2024, intPtr(month))
			assert.ErrorIs(t, err, services.ErrInvalidArgument)
			assert.EqualError(t, err, "Month must be between 1 and 12")
		})
	}

	t.Run("whole current year", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p pipeline.Pipeline) ([]pipeline.Row, error) {
				_, args := compileOn(t, "user_transactions", p)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), args[4])
				assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), args[5])
				return []pipeline.Row{
					{"year": int64(2024), "month": int64(2), "wallet_topup": "500", "game_fee": "50", "winning": "100", "withdrawal": "80", "transaction_count": int64(4)},
					{"year": int64(2024), "month": int64(1), "wallet_topup": "10", "transaction_count": int64(1)},
				}, nil
			})

		report, err := svc.MonthlyEarnings(context.Background(), 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 2024, report.Year)
		assert.Nil(t, report.Month)
		assert.Equal(t, 2, report.TotalRecords)
		require.Len(t, report.Data, 2)

		assert.Equal(t, "January", report.Data[0].MonthName)
		feb := report.Data[1]
		assert.Equal(t, "February", feb.MonthName)
		assertDecimal(t, "370", feb.NetEarnings)
		assert.Equal(t, int64(4), feb.TransactionCount)
	})

	t.Run("single month without data", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := svc.MonthlyEarnings(context.Background(), 2023, intPtr(6))
		require.NoError(t, err)
		require.NotNil(t, report.Month)
		assert.Equal(t, 6, *report.Month)
		assert.Equal(t, 2023, report.Year)
		assert.NotNil(t, report.Data)
		assert.Empty(t, report.Data)
		assert.Equal(t, 0, report.TotalRecords)
	})
}

func TestReportService_LastMonthEarnings(t *testing.T) {
	t.Run("zero record", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := svc.LastMonthEarnings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, report.CurrentMonth)
		assert.Equal(t, 2024, report.CurrentYear)
		assert.Equal(t, "March", report.CurrentMonthName)
		assert.False(t, report.HasData)

		data := report.LastMonthData
		assert.Equal(t, 2024, data.Year)
		assert.Equal(t, 2, data.Month)
		assert.Equal(t, "February", data.MonthName)
		assert.Equal(t, 29, data.DaysInMonth)
		assertDecimal(t, "0", data.NetEarnings)
		assertDecimal(t, "0", data.WalletTopup)
	})

	t.Run("january rolls back to december", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
			{"wallet_topup": "100", "withdrawal": "40", "transaction_count": int64(2)},
		}, nil)

		report, err := svc.LastMonthEarnings(context.Background())
		require.NoError(t, err)
		assert.True(t, report.HasData)
		assert.Equal(t, 2023, report.LastMonthData.Year)
		assert.Equal(t, 12, report.LastMonthData.Month)
		assert.Equal(t, 31, report.LastMonthData.DaysInMonth)
		assertDecimal(t, "60", report.LastMonthData.NetEarnings)
	})
}

func TestReportService_LastYearEarnings(t *testing.T) {
	t.Run("zero record", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := svc.LastYearEarnings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2023, report.LastYear)
		assert.Equal(t, 2024, report.CurrentYear)
		assert.False(t, report.HasData)
		assert.Equal(t, 2023, report.Data.Year)
		assert.NotNil(t, report.Data.MonthlyData)
		assert.Empty(t, report.Data.MonthlyData)
		assertDecimal(t, "0", report.Data.NetEarnings)
	})

	t.Run("rolls up months", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
			{"year": int64(2023), "month": int64(11), "game_fee": "20", "transaction_count": int64(1)},
			{"year": int64(2023), "month": int64(2), "wallet_topup": "300", "winning": "50", "transaction_count": int64(3)},
		}, nil)

		report, err := svc.LastYearEarnings(context.Background())
		require.NoError(t, err)
		assert.True(t, report.HasData)
		assertDecimal(t, "300", report.Data.TotalWalletTopup)
		assertDecimal(t, "20", report.Data.TotalGameFee)
		assertDecimal(t, "270", report.Data.NetEarnings)
		assert.Equal(t, int64(4), report.Data.TotalTransactions)
		require.Len(t, report.Data.MonthlyData, 2)
		assert.Equal(t, "February", report.Data.MonthlyData[0].MonthName)
		assert.Equal(t, "November", report.Data.MonthlyData[1].MonthName)
	})
}

func TestReportService_PeriodEarnings(t *testing.T) {
	t.Run("empty window", func(t *testing.T) {
		svc, ledger, users := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		users.EXPECT().Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m pipeline.Match) (int64, error) {
				where, _, err := pipeline.CompileMatch(m)
				require.NoError(t, err)
				assert.Equal(t, "WHERE role = $1 AND is_verified = $2 AND created_at >= $3 AND created_at < $4", where)
				return 0, nil
			})

		report, err := svc.PeriodEarnings(context.Background(), "30d")
		require.NoError(t, err)
		assert.Equal(t, "30d", report.Period)
		assert.Equal(t, int64(0), report.ActiveUsers)
		assert.Equal(t, int64(0), report.NewUsers)
		assertDecimal(t, "0", report.Revenue)
		assertDecimal(t, "0", report.Data.WalletTopup)
		assertDecimal(t, "0", report.Data.GameFee)
		assertDecimal(t, "0", report.Data.Winning)
		assertDecimal(t, "0", report.Data.Withdrawal)
		assertDecimal(t, "0", report.Data.NetEarnings)
		assert.Equal(t, int64(0), report.Data.TransactionCount)
		assert.Equal(t, "2024-02-14T16:00:00+05:30", report.StartDate)
		assert.Equal(t, "2024-03-15T16:00:00+05:30", report.EndDate)
	})

	t.Run("revenue aliases net earnings", func(t *testing.T) {
		svc, ledger, users := newReportService(t, march15)

		gomock.InOrder(
			ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
				{"wallet_topup": "500", "game_fee": "50", "winning": "100", "withdrawal": "80", "transaction_count": int64(4)},
			}, nil),
			ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{{"active_users": int64(2)}}, nil),
		)
		users.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		report, err := svc.PeriodEarnings(context.Background(), "1d")
		require.NoError(t, err)
		assertDecimal(t, "370", report.Revenue)
		assertDecimal(t, "370", report.Data.NetEarnings)
		assert.Equal(t, int64(2), report.ActiveUsers)
		assert.Equal(t, int64(1), report.NewUsers)
		assert.Equal(t, "2024-03-15T00:00:00+05:30", report.StartDate)
		assert.Equal(t, "2024-03-16T00:00:00+05:30", report.EndDate)
	})

	t.Run("default token", func(t *testing.T) {
		svc, ledger, users := newReportService(t, march15)

		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		users.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		report, err := svc.PeriodEarnings(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, services.DefaultPeriodToken, report.Period)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, _, _ := newReportService(t, march15)

		_, err := svc.PeriodEarnings(context.Background(), "2w")
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
		assert.EqualError(t, err, "Invalid period")
	})
}

func TestReportService_MonthlyUserGrowth(t *testing.T) {
	svc, _, users := newReportService(t, march15)

	users.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
		{"year": int64(2024), "month": int64(3), "user_count": int64(5)},
	}, nil)

	report, err := svc.MonthlyUserGrowth(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, int64(5), report.TotalUsers)
	assert.Equal(t, []models.UserGrowthMonth{
		{Year: 2024, Month: 3, MonthName: "March", UserCount: 5},
	}, report.Data)
}

func TestReportService_MonthlyCombined(t *testing.T) {
	t.Run("synthesizes twelve months", func(t *testing.T) {
		svc, ledger, users := newReportService(t, march15)

		users.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
			{"year": int64(2023), "month": int64(3), "user_count": int64(2)},
		}, nil)
		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p pipeline.Pipeline) ([]pipeline.Row, error) {
				_, args := compileOn(t, "user_transactions", p)
				assert.Equal(t, "wallet_topup", args[len(args)-1])
				return []pipeline.Row{
					{"year": int64(2023), "month": int64(7), "wallet_topup": "50", "transaction_count": int64(1)},
				}, nil
			})

		report, err := svc.MonthlyCombined(context.Background(), 2023)
		require.NoError(t, err)
		assert.Equal(t, 2023, report.Year)
		require.Len(t, report.Data, 12)

		for i, m := range report.Data {
			assert.Equal(t, i+1, m.MonthNumber)
		}
		assert.Equal(t, "Jan", report.Data[0].Month)
		assert.Equal(t, "Dec", report.Data[11].Month)
		assert.Equal(t, int64(2), report.Data[2].Users)
		assertDecimal(t, "0", report.Data[2].Revenue)
		assert.Equal(t, int64(0), report.Data[6].Users)
		assertDecimal(t, "50", report.Data[6].Revenue)
	})

	t.Run("no source months", func(t *testing.T) {
		svc, ledger, users := newReportService(t, march15)

		users.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil)
		ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := svc.MonthlyCombined(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, report.Data, 12)
		for _, m := range report.Data {
			assert.Equal(t, int64(0), m.Users)
			assertDecimal(t, "0", m.Revenue)
		}
	})
}

func TestReportService_UserTransactions(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc, _, _ := newReportService(t, march15)

		_, err := svc.UserTransactions(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
		assert.EqualError(t, err, "Invalid User Id format")
	})

	t.Run("player view summary", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)
		id := uuid.New()

		ledger.EXPECT().FindByUserID(gomock.Any(), id).Return([]models.TransactionDB{
			{ID: uuid.New(), UserID: id, Amount: dec("500"), Type: models.WalletTopup},
			{ID: uuid.New(), UserID: id, Amount: dec("50"), Type: models.GameFee},
			{ID: uuid.New(), UserID: id, Amount: dec("100"), Type: models.Winning},
			{ID: uuid.New(), UserID: id, Amount: dec("80"), Type: models.Withdrawal},
		}, nil)

		report, err := svc.UserTransactions(context.Background(), id.String())
		require.NoError(t, err)
		assert.Equal(t, id, report.UserID)
		assert.Equal(t, 4, report.TotalTransactions)
		assertDecimal(t, "500", report.Summary.TotalWalletTopup)
		assertDecimal(t, "470", report.Summary.NetBalance)
		assert.Len(t, report.Transactions, 4)
	})

	t.Run("no transactions", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)
		id := uuid.New()

		ledger.EXPECT().FindByUserID(gomock.Any(), id).Return(nil, nil)

		report, err := svc.UserTransactions(context.Background(), id.String())
		require.NoError(t, err)
		assert.Equal(t, 0, report.TotalTransactions)
		assert.NotNil(t, report.Transactions)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, ledger, _ := newReportService(t, march15)
		id := uuid.New()

		ledger.EXPECT().FindByUserID(gomock.Any(), id).Return(nil, errors.New("timeout"))

		_, err := svc.UserTransactions(context.Background(), id.String())
		assert.ErrorIs(t, err, services.ErrStoreFailure)
		assert.EqualError(t, err, "Error fetching transactions: timeout")
	})
}

func TestReportService_UsersWithSummary(t *testing.T) {
	svc, ledger, users := newReportService(t, march15)

	alice, bob := uuid.New(), uuid.New()
	mobile := "9876543210"
	users.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]models.UserDB{
		{UserID: alice, Name: "Alice", MobileNumber: &mobile, CreatedAt: march15.AddDate(0, -1, 0)},
		{UserID: bob, Name: "Bob", CreatedAt: march15},
	}, nil)
	ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
		{"user_id": alice.String(), "wallet_topup": "500", "game_fee": "50", "winning": "100", "withdrawal": "80", "transaction_count": int64(4)},
	}, nil)

	report, err := svc.UsersWithSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalUsers)
	require.Len(t, report.Data, 2)

	first := report.Data[0]
	assert.Equal(t, alice, first.ID)
	assert.Equal(t, 1, first.Serial)
	assert.Equal(t, &mobile, first.MobileNumber)
	assertDecimal(t, "500", first.TotalCredit)
	assertDecimal(t, "470", first.NetBalance)

	second := report.Data[1]
	assert.Equal(t, 2, second.Serial)
	assertDecimal(t, "0", second.TotalCredit)
	assertDecimal(t, "0", second.NetBalance)
}

func TestReportService_WalletTotals(t *testing.T) {
	svc, ledger, _ := newReportService(t, march15)

	ledger.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return([]pipeline.Row{
		{"wallet_topup": "1000", "game_fee": "120", "winning": "300", "withdrawal": "200", "transaction_count": int64(9)},
	}, nil)

	totals, err := svc.WalletTotals(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "1000", totals.TotalWalletTopup)
	assertDecimal(t, "120", totals.TotalGameFee)
	assertDecimal(t, "300", totals.TotalWinning)
	assertDecimal(t, "200", totals.TotalWithdrawal)
	assert.Equal(t, int64(9), totals.TotalTransactions)
}
