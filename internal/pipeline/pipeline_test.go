package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		pipeline  Pipeline
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "sum by category without keys",
			pipeline: New("user_transactions",
				Match{Predicates: []Predicate{
					Where(Col("created_at"), Gte, start),
					Where(Col("created_at"), Lt, end),
				}},
				Group{Accumulators: []Accumulator{
					SumWhere("game_fee", "amount", Where(Col("type"), Eq, "game_fee")),
					Count("transaction_count"),
				}},
			),
			wantQuery: "SELECT COALESCE(SUM(CASE WHEN type = $1 THEN amount ELSE 0 END), 0) AS game_fee, " +
				"COUNT(*) AS transaction_count FROM user_transactions WHERE created_at >= $2 AND created_at < $3",
			wantArgs: []any{"game_fee", start, end},
		},
		{
			name: "group by month sorted",
			pipeline: New("user_transactions",
				Group{
					Keys: []Key{
						By("year", Year("created_at")),
						By("month", Month("created_at")),
					},
					Accumulators: []Accumulator{Sum("total", "amount")},
				},
				Sort{Keys: []SortKey{Asc("year"), Asc("month")}},
			),
			wantQuery: "SELECT EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year, " +
				"EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month, " +
				"COALESCE(SUM(amount), 0) AS total FROM user_transactions GROUP BY 1, 2 ORDER BY year, month",
			wantArgs: nil,
		},
		{
			name: "project and descending sort",
			pipeline: New("users",
				Match{Predicates: []Predicate{Where(Col("role"), Ne, "admin")}},
				Group{
					Keys:         []Key{By("date", Date("created_at"))},
					Accumulators: []Accumulator{Count("user_count"), CountDistinct("distinct_users", "id")},
				},
				Project{Fields: []string{"date", "user_count"}},
				Sort{Keys: []SortKey{{Field: "date", Desc: true}}},
			),
			wantQuery: "SELECT date, user_count FROM (SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, " +
				"COUNT(*) AS user_count, COUNT(DISTINCT id) AS distinct_users FROM users WHERE role <> $1 GROUP BY 1) AS t " +
				"ORDER BY date DESC",
			wantArgs: []any{"admin"},
		},
		{
			name: "group by user id as text",
			pipeline: New("user_transactions",
				Group{
					Keys:         []Key{By("user_id", Text("user_id"))},
					Accumulators: []Accumulator{Count("n")},
				},
			),
			wantQuery: "SELECT user_id::text AS user_id, COUNT(*) AS n FROM user_transactions GROUP BY 1",
			wantArgs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := Compile(tt.pipeline)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCompile_Deterministic(t *testing.T) {
	p := New("user_transactions",
		Match{Predicates: []Predicate{Where(Col("user_id"), Eq, "u1")}},
		Group{Accumulators: []Accumulator{Sum("total", "amount")}},
	)

	q1, a1, err1 := Compile(p)
	q2, a2, err2 := Compile(p)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, q1, q2)
	assert.Equal(t, a1, a2)
}

func TestCompile_Invalid(t *testing.T) {
	group := Group{Accumulators: []Accumulator{Count("n")}}

	tests := []struct {
		name     string
		pipeline Pipeline
	}{
		{"missing table", New("", group)},
		{"missing group", New("users", Match{})},
		{"empty group", New("users", Group{})},
		{"match after group", New("users", group, Match{})},
		{"two groups", New("users", group, group)},
		{"project before group", New("users", Project{Fields: []string{"n"}}, group)},
		{"empty project", New("users", group, Project{})},
		{"two sorts", New("users", group, Sort{}, Sort{})},
		{"bad operator", New("users", Match{Predicates: []Predicate{Where(Col("a"), Op("LIKE"), "x")}}, group)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Compile(tt.pipeline)
			assert.True(t, errors.Is(err, ErrInvalidPipeline))
		})
	}
}

func TestPipeline_Then(t *testing.T) {
	base := New("users", Match{})
	extended := base.Then(Group{Accumulators: []Accumulator{Count("n")}})

	assert.Len(t, base.Stages, 1)
	assert.Len(t, extended.Stages, 2)
	assert.Equal(t, "users", extended.From)
}
