package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one output record of a compiled pipeline keyed by field name.
type Row map[string]any

// Decimal reads a numeric field. Missing and NULL fields read as zero.
func (r Row) Decimal(field string) (decimal.Decimal, error) {
	switch v := r[field].(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case []byte:
		return decimal.NewFromString(string(v))
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	}
	return decimal.Zero, fmt.Errorf("field %s: unsupported numeric type %T", field, r[field])
}

// Int reads an integer field. Missing and NULL fields read as zero.
func (r Row) Int(field string) (int64, error) {
	switch v := r[field].(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	case []byte:
		return strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
	}
	return 0, fmt.Errorf("field %s: unsupported integer type %T", field, r[field])
}

// String reads a text field. Missing and NULL fields read as empty.
func (r Row) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(r[field])
}
