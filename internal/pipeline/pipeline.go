// Package pipeline builds aggregation queries from small composable stages
// and compiles them into parameterised PostgreSQL statements.
package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPipeline is returned by Compile for malformed stage sequences.
var ErrInvalidPipeline = errors.New("invalid pipeline")

// Stage is one step of a pipeline: Match, Group, Project or Sort.
type Stage interface {
	stage() string
}

// Pipeline is an ordered list of stages applied to one table.
type Pipeline struct {
	From   string
	Stages []Stage
}

// New starts a pipeline over table.
func New(table string, stages ...Stage) Pipeline {
	return Pipeline{From: table, Stages: stages}
}

// Then returns a copy of p with stages appended.
func (p Pipeline) Then(stages ...Stage) Pipeline {
	out := make([]Stage, 0, len(p.Stages)+len(stages))
	out = append(out, p.Stages...)
	out = append(out, stages...)
	return Pipeline{From: p.From, Stages: out}
}

// Op is a comparison operator.
type Op string

// Supported operators
const (
	Eq  Op = "="
	Ne  Op = "<>"
	Gte Op = ">="
	Lt  Op = "<"
)

// Expr is a column or a value derived from one.
type Expr struct {
	sql string
}

// Col references a column as is.
func Col(name string) Expr { return Expr{sql: name} }

// Date derives the UTC calendar date of a timestamp column as YYYY-MM-DD.
func Date(col string) Expr {
	return Expr{sql: fmt.Sprintf("to_char(%s AT TIME ZONE 'UTC', 'YYYY-MM-DD')", col)}
}

// Year derives the UTC year of a timestamp column.
func Year(col string) Expr {
	return Expr{sql: fmt.Sprintf("EXTRACT(YEAR FROM %s AT TIME ZONE 'UTC')::int", col)}
}

// Month derives the UTC month (1-12) of a timestamp column.
func Month(col string) Expr {
	return Expr{sql: fmt.Sprintf("EXTRACT(MONTH FROM %s AT TIME ZONE 'UTC')::int", col)}
}

// Text casts a column to text.
func Text(col string) Expr { return Expr{sql: col + "::text"} }

// Predicate compares an expression with a bound value.
type Predicate struct {
	Expr  Expr
	Op    Op
	Value any
}

// Where builds a predicate.
func Where(e Expr, op Op, value any) Predicate {
	return Predicate{Expr: e, Op: op, Value: value}
}

// Match filters input rows. All predicates must hold.
type Match struct {
	Predicates []Predicate
}

func (Match) stage() string { return "match" }

// Key is a named grouping expression.
type Key struct {
	Name string
	Expr Expr
}

// By builds a grouping key.
func By(name string, e Expr) Key { return Key{Name: name, Expr: e} }

type accKind int

const (
	accSum accKind = iota
	accSumWhere
	accCount
	accCountDistinct
)

// Accumulator is a named aggregate computed per group.
type Accumulator struct {
	Name  string
	kind  accKind
	field string
	cond  *Predicate
}

// Sum adds up field.
func Sum(name, field string) Accumulator {
	return Accumulator{Name: name, kind: accSum, field: field}
}

// SumWhere adds up field over rows matching cond.
func SumWhere(name, field string, cond Predicate) Accumulator {
	return Accumulator{Name: name, kind: accSumWhere, field: field, cond: &cond}
}

// Count counts rows.
func Count(name string) Accumulator {
	return Accumulator{Name: name, kind: accCount}
}

// CountDistinct counts distinct values of field.
func CountDistinct(name, field string) Accumulator {
	return Accumulator{Name: name, kind: accCountDistinct, field: field}
}

// Group buckets rows by Keys and computes Accumulators per bucket.
// Without keys the whole input collapses into exactly one row.
type Group struct {
	Keys         []Key
	Accumulators []Accumulator
}

func (Group) stage() string { return "group" }

// Project selects a subset of the previous stage's fields.
type Project struct {
	Fields []string
}

func (Project) stage() string { return "project" }

// SortKey orders output by a field.
type SortKey struct {
	Field string
	Desc  bool
}

// Asc sorts field ascending.
func Asc(field string) SortKey { return SortKey{Field: field} }

// Sort orders the output.
type Sort struct {
	Keys []SortKey
}

func (Sort) stage() string { return "sort" }

type builder struct {
	args []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *builder) predicate(p Predicate) (string, error) {
	switch p.Op {
	case Eq, Ne, Gte, Lt:
	default:
		return "", fmt.Errorf("%w: unsupported operator %q", ErrInvalidPipeline, p.Op)
	}
	return fmt.Sprintf("%s %s %s", p.Expr.sql, p.Op, b.bind(p.Value)), nil
}

func (b *builder) accumulator(a Accumulator) (string, error) {
	switch a.kind {
	case accSum:
		return fmt.Sprintf("COALESCE(SUM(%s), 0) AS %s", a.field, a.Name), nil
	case accSumWhere:
		cond, err := b.predicate(*a.cond)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("COALESCE(SUM(CASE WHEN %s THEN %s ELSE 0 END), 0) AS %s", cond, a.field, a.Name), nil
	case accCount:
		return fmt.Sprintf("COUNT(*) AS %s", a.Name), nil
	case accCountDistinct:
		return fmt.Sprintf("COUNT(DISTINCT %s) AS %s", a.field, a.Name), nil
	}
	return "", fmt.Errorf("%w: unknown accumulator %q", ErrInvalidPipeline, a.Name)
}

// Compile renders the pipeline as a single SQL statement with positional args.
// Stages must appear in the order match*, group, project?, sort?.
func Compile(p Pipeline) (string, []any, error) {
	if p.From == "" {
		return "", nil, fmt.Errorf("%w: missing table", ErrInvalidPipeline)
	}

	var (
		preds   []Predicate
		group   *Group
		project *Project
		sort    *Sort
	)

	for _, s := range p.Stages {
		switch st := s.(type) {
		case Match:
			if group != nil {
				return "", nil, fmt.Errorf("%w: match after group", ErrInvalidPipeline)
			}
			preds = append(preds, st.Predicates...)
		case Group:
			if group != nil {
				return "", nil, fmt.Errorf("%w: more than one group", ErrInvalidPipeline)
			}
			g := st
			group = &g
		case Project:
			if group == nil || project != nil || sort != nil {
				return "", nil, fmt.Errorf("%w: project must follow group", ErrInvalidPipeline)
			}
			pr := st
			project = &pr
		case Sort:
			if sort != nil {
				return "", nil, fmt.Errorf("%w: more than one sort", ErrInvalidPipeline)
			}
			so := st
			sort = &so
		default:
			return "", nil, fmt.Errorf("%w: unknown stage %T", ErrInvalidPipeline, s)
		}
	}

	if group == nil || len(group.Keys)+len(group.Accumulators) == 0 {
		return "", nil, fmt.Errorf("%w: group stage required", ErrInvalidPipeline)
	}

	// placeholders are numbered in text order: select list first, then where
	var b builder
	cols := make([]string, 0, len(group.Keys)+len(group.Accumulators))
	for _, k := range group.Keys {
		cols = append(cols, fmt.Sprintf("%s AS %s", k.Expr.sql, k.Name))
	}
	for _, a := range group.Accumulators {
		col, err := b.accumulator(a)
		if err != nil {
			return "", nil, err
		}
		cols = append(cols, col)
	}
	where := make([]string, 0, len(preds))
	for _, pr := range preds {
		cond, err := b.predicate(pr)
		if err != nil {
			return "", nil, err
		}
		where = append(where, cond)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(p.From)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	if len(group.Keys) > 0 {
		pos := make([]string, len(group.Keys))
		for i := range group.Keys {
			pos[i] = strconv.Itoa(i + 1)
		}
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(pos, ", "))
	}

	query := sb.String()
	if project != nil {
		if len(project.Fields) == 0 {
			return "", nil, fmt.Errorf("%w: empty project", ErrInvalidPipeline)
		}
		query = fmt.Sprintf("SELECT %s FROM (%s) AS t", strings.Join(project.Fields, ", "), query)
	}

	if sort != nil && len(sort.Keys) > 0 {
		keys := make([]string, len(sort.Keys))
		for i, k := range sort.Keys {
			keys[i] = k.Field
			if k.Desc {
				keys[i] += " DESC"
			}
		}
		query += " ORDER BY " + strings.Join(keys, ", ")
	}

	return query, b.args, nil
}
