package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/period"
	"github.com/sbilibin2017/gw-gaming-platform/internal/pipeline"
)

// LedgerAggregator runs pipelines over the transaction ledger.
type LedgerAggregator interface {
	Aggregate(ctx context.Context, p pipeline.Pipeline) ([]pipeline.Row, error)
}

// UserAggregator counts, finds and aggregates users.
type UserAggregator interface {
	Count(ctx context.Context, m pipeline.Match) (int64, error)
	Find(ctx context.Context, m pipeline.Match) ([]models.UserDB, error)
	Aggregate(ctx context.Context, p pipeline.Pipeline) ([]pipeline.Row, error)
}

// GroupBy selects the time bucket of an aggregation.
type GroupBy int

// Bucket granularities
const (
	GroupNone GroupBy = iota
	GroupByDay
	GroupByMonth
)

// LedgerQuery describes one ledger aggregation. A nil Window covers the whole
// ledger; an empty Category covers all categories.
type LedgerQuery struct {
	Window   *period.Window
	Category models.Category
	GroupBy  GroupBy
}

const (
	fieldCount       = "transaction_count"
	fieldDate        = "date"
	fieldYear        = "year"
	fieldMonth       = "month"
	fieldUserID      = "user_id"
	fieldActiveUsers = "active_users"
	fieldUserCount   = "user_count"
)

// Engine aggregates the ledger and the users table into buckets.
type Engine struct {
	ledger LedgerAggregator
	users  UserAggregator
}

// NewEngine creates an Engine.
func NewEngine(ledger LedgerAggregator, users UserAggregator) *Engine {
	return &Engine{ledger: ledger, users: users}
}

func windowMatch(col string, w *period.Window) []pipeline.Predicate {
	if w == nil {
		return nil
	}
	return []pipeline.Predicate{
		pipeline.Where(pipeline.Col(col), pipeline.Gte, w.Start),
		pipeline.Where(pipeline.Col(col), pipeline.Lt, w.End),
	}
}

func categoryAccumulators() []pipeline.Accumulator {
	accs := make([]pipeline.Accumulator, 0, len(models.Categories)+1)
	for _, c := range models.Categories {
		accs = append(accs, pipeline.SumWhere(string(c), "amount",
			pipeline.Where(pipeline.Col("type"), pipeline.Eq, string(c))))
	}
	return append(accs, pipeline.Count(fieldCount))
}

// Aggregate sums every category per bucket. Day and month buckets come back
// sorted ascending; GroupNone always yields exactly one bucket.
func (e *Engine) Aggregate(ctx context.Context, q LedgerQuery) ([]models.Bucket, error) {
	preds := windowMatch("created_at", q.Window)
	if q.Category != "" {
		preds = append(preds, pipeline.Where(pipeline.Col("type"), pipeline.Eq, string(q.Category)))
	}

	var keys []pipeline.Key
	var sortKeys []pipeline.SortKey
	switch q.GroupBy {
	case GroupByDay:
		keys = []pipeline.Key{pipeline.By(fieldDate, pipeline.Date("created_at"))}
		sortKeys = []pipeline.SortKey{pipeline.Asc(fieldDate)}
	case GroupByMonth:
		keys = []pipeline.Key{
			pipeline.By(fieldYear, pipeline.Year("created_at")),
			pipeline.By(fieldMonth, pipeline.Month("created_at")),
		}
		sortKeys = []pipeline.SortKey{pipeline.Asc(fieldYear), pipeline.Asc(fieldMonth)}
	}

	p := pipeline.New("",
		pipeline.Match{Predicates: preds},
		pipeline.Group{Keys: keys, Accumulators: categoryAccumulators()},
	)
	if len(sortKeys) > 0 {
		p = p.Then(pipeline.Sort{Keys: sortKeys})
	}

	rows, err := e.ledger.Aggregate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("aggregate ledger: %w", err)
	}

	buckets := make([]models.Bucket, 0, len(rows))
	for _, row := range rows {
		b, err := bucketFromRow(row, q.GroupBy)
		if err != nil {
			return nil, fmt.Errorf("read ledger aggregate: %w", err)
		}
		buckets = append(buckets, b)
	}

	switch q.GroupBy {
	case GroupNone:
		if len(buckets) == 0 {
			buckets = append(buckets, models.Bucket{Sums: models.NewCategorySums()})
		}
	case GroupByDay:
		sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	case GroupByMonth:
		sort.SliceStable(buckets, func(i, j int) bool {
			if buckets[i].Year != buckets[j].Year {
				return buckets[i].Year < buckets[j].Year
			}
			return buckets[i].Month < buckets[j].Month
		})
	}

	return buckets, nil
}

// Total aggregates q without buckets.
func (e *Engine) Total(ctx context.Context, q LedgerQuery) (models.Bucket, error) {
	q.GroupBy = GroupNone
	buckets, err := e.Aggregate(ctx, q)
	if err != nil {
		return models.Bucket{}, err
	}
	return buckets[0], nil
}

func bucketFromRow(row pipeline.Row, groupBy GroupBy) (models.Bucket, error) {
	b := models.Bucket{Sums: models.NewCategorySums()}
	for _, c := range models.Categories {
		v, err := row.Decimal(string(c))
		if err != nil {
			return b, err
		}
		b.Sums[c] = v
	}

	n, err := row.Int(fieldCount)
	if err != nil {
		return b, err
	}
	b.Count = n

	switch groupBy {
	case GroupByDay:
		b.Date = row.String(fieldDate)
	case GroupByMonth:
		year, err := row.Int(fieldYear)
		if err != nil {
			return b, err
		}
		month, err := row.Int(fieldMonth)
		if err != nil {
			return b, err
		}
		b.Year, b.Month = int(year), int(month)
	}
	return b, nil
}

// ActiveUsers counts distinct users with at least one ledger entry in w.
func (e *Engine) ActiveUsers(ctx context.Context, w period.Window) (int64, error) {
	rows, err := e.ledger.Aggregate(ctx, pipeline.New("",
		pipeline.Match{Predicates: windowMatch("created_at", &w)},
		pipeline.Group{Accumulators: []pipeline.Accumulator{pipeline.CountDistinct(fieldActiveUsers, "user_id")}},
	))
	if err != nil {
		return 0, fmt.Errorf("count active users: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := rows[0].Int(fieldActiveUsers)
	if err != nil {
		return 0, fmt.Errorf("read active users: %w", err)
	}
	return n, nil
}

// SumsByUser returns per-user category sums over the whole ledger.
func (e *Engine) SumsByUser(ctx context.Context) (map[uuid.UUID]models.CategorySums, error) {
	rows, err := e.ledger.Aggregate(ctx, pipeline.New("",
		pipeline.Group{
			Keys:         []pipeline.Key{pipeline.By(fieldUserID, pipeline.Text("user_id"))},
			Accumulators: categoryAccumulators(),
		},
	))
	if err != nil {
		return nil, fmt.Errorf("aggregate ledger by user: %w", err)
	}

	out := make(map[uuid.UUID]models.CategorySums, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.String(fieldUserID))
		if err != nil {
			return nil, fmt.Errorf("read ledger by user: user_id: %w", err)
		}
		b, err := bucketFromRow(row, GroupNone)
		if err != nil {
			return nil, fmt.Errorf("read ledger by user: %w", err)
		}
		out[id] = b.Sums
	}
	return out, nil
}

func userMatch(f models.UserFilter) pipeline.Match {
	var preds []pipeline.Predicate
	if f.ExcludeRole != "" {
		preds = append(preds, pipeline.Where(pipeline.Col("role"), pipeline.Ne, string(f.ExcludeRole)))
	}
	if f.Role != "" {
		preds = append(preds, pipeline.Where(pipeline.Col("role"), pipeline.Eq, string(f.Role)))
	}
	if f.VerifiedOnly {
		preds = append(preds, pipeline.Where(pipeline.Col("is_verified"), pipeline.Eq, true))
	}
	if f.From != nil {
		preds = append(preds, pipeline.Where(pipeline.Col("created_at"), pipeline.Gte, *f.From))
	}
	if f.To != nil {
		preds = append(preds, pipeline.Where(pipeline.Col("created_at"), pipeline.Lt, *f.To))
	}
	return pipeline.Match{Predicates: preds}
}

// CountUsers counts users matching f.
func (e *Engine) CountUsers(ctx context.Context, f models.UserFilter) (int64, error) {
	n, err := e.users.Count(ctx, userMatch(f))
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// FindUsers lists users matching f, oldest first.
func (e *Engine) FindUsers(ctx context.Context, f models.UserFilter) ([]models.UserDB, error) {
	users, err := e.users.Find(ctx, userMatch(f))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

// UsersByMonth counts users matching f per calendar month, sorted ascending.
// Months without users are absent.
func (e *Engine) UsersByMonth(ctx context.Context, f models.UserFilter) ([]models.MonthCount, error) {
	rows, err := e.users.Aggregate(ctx, pipeline.New("",
		userMatch(f),
		pipeline.Group{
			Keys: []pipeline.Key{
				pipeline.By(fieldYear, pipeline.Year("created_at")),
				pipeline.By(fieldMonth, pipeline.Month("created_at")),
			},
			Accumulators: []pipeline.Accumulator{pipeline.Count(fieldUserCount)},
		},
		pipeline.Sort{Keys: []pipeline.SortKey{pipeline.Asc(fieldYear), pipeline.Asc(fieldMonth)}},
	))
	if err != nil {
		return nil, fmt.Errorf("aggregate users: %w", err)
	}

	out := make([]models.MonthCount, 0, len(rows))
	for _, row := range rows {
		year, err := row.Int(fieldYear)
		if err != nil {
			return nil, fmt.Errorf("read users aggregate: %w", err)
		}
		month, err := row.Int(fieldMonth)
		if err != nil {
			return nil, fmt.Errorf("read users aggregate: %w", err)
		}
		n, err := row.Int(fieldUserCount)
		if err != nil {
			return nil, fmt.Errorf("read users aggregate: %w", err)
		}
		if n == 0 {
			continue
		}
		out = append(out, models.MonthCount{Year: int(year), Month: int(month), Count: n})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}
