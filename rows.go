package parambuilder

import (
	"context"
	"github.com/go-andiamo/columbus"
	"maps"
	"slices"
	"strings"
)

// ParamsFromRow reads Params from the single row selected by the query
//
// the query must start with "SELECT " - each selected column becomes a param (ordered by column name)
//
// the column order of the SELECT is not preserved
func ParamsFromRow(ctx context.Context, db columbus.SqlInterface, query string, args ...any) (*Params, error) {
	if db == nil {
		return nil, newError(ErrorArgumentRequired, "db", "db is required")
	}
	if !strings.HasPrefix(strings.ToUpper(query), "SELECT ") {
		return nil, newError(ErrorArgumentInvalid, "query", "query must start with \"SELECT\"")
	}
	mapper, err := columbus.NewMapper(query[7:], columbus.Query(""))
	if err != nil {
		return nil, wrapError(ErrorArgumentInvalid, "query", err, "")
	}
	row, err := mapper.ExactlyOneRow(ctx, db, args)
	if err != nil {
		return nil, err
	}
	result := NewParams()
	for _, k := range slices.Sorted(maps.Keys(row)) {
		result.Set(k, row[k])
	}
	return result, nil
}
