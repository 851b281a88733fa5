package pipeline

import "strings"

// CompileMatch renders the predicates of m as a WHERE clause for plain finds
// and counts. It returns an empty clause when m has no predicates.
func CompileMatch(m Match) (string, []any, error) {
	if len(m.Predicates) == 0 {
		return "", nil, nil
	}
	var b builder
	conds := make([]string, 0, len(m.Predicates))
	for _, p := range m.Predicates {
		cond, err := b.predicate(p)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, cond)
	}
	return "WHERE " + strings.Join(conds, " AND "), b.args, nil
}
