package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRow_Decimal(t *testing.T) {
	row := Row{
		"str":   "100.25",
		"bytes": []byte("7.5"),
		"int":   int64(3),
		"float": 2.5,
		"dec":   decimal.NewFromInt(9),
		"null":  nil,
		"bad":   true,
	}

	tests := []struct {
		field   string
		want    string
		wantErr bool
	}{
		{"str", "100.25", false},
		{"bytes", "7.5", false},
		{"int", "3", false},
		{"float", "2.5", false},
		{"dec", "9", false},
		{"null", "0", false},
		{"missing", "0", false},
		{"bad", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := row.Decimal(tt.field)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRow_Int(t *testing.T) {
	row := Row{"a": int64(4), "b": int32(5), "c": "6", "d": nil, "e": []byte("x")}

	v, err := row.Int("a")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), v)

	v, err = row.Int("b")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = row.Int("c")
	assert.NoError(t, err)
	assert.Equal(t, int64(6), v)

	v, err = row.Int("d")
	assert.NoError(t, err)
	assert.Zero(t, v)

	_, err = row.Int("e")
	assert.Error(t, err)
}

func TestRow_String(t *testing.T) {
	row := Row{"s": "2024-03-01", "b": []byte("x"), "n": int64(1)}
	assert.Equal(t, "2024-03-01", row.String("s"))
	assert.Equal(t, "x", row.String("b"))
	assert.Equal(t, "1", row.String("n"))
	assert.Equal(t, "", row.String("missing"))
}

func TestCompileMatch(t *testing.T) {
	clause, args, err := CompileMatch(Match{})
	assert.NoError(t, err)
	assert.Empty(t, clause)
	assert.Nil(t, args)

	clause, args, err = CompileMatch(Match{Predicates: []Predicate{
		Where(Col("role"), Ne, "admin"),
		Where(Col("is_verified"), Eq, true),
	}})
	assert.NoError(t, err)
	assert.Equal(t, "WHERE role <> $1 AND is_verified = $2", clause)
	assert.Equal(t, []any{"admin", true}, args)
}
