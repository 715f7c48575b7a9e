package bd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"game-api/pkg/types"
)

// ApplyListParams applies filter, sort and pagination for the fields listed in allowedMap
// (json field -> qualified column). Unknown fields are ignored.
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, allowedMap map[string]string) sq.SelectBuilder {
	for _, jsonField := range sortedKeys(filter.Filter) {
		val := filter.Filter[jsonField]
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}

		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			parts := strings.Split(s, ",")
			values := make([]interface{}, 0, len(parts))
			for _, p := range parts {
				values = append(values, coerce(dbCol, strings.TrimSpace(p)))
			}
			builder = builder.Where(sq.Eq{dbCol: values})
		} else {
			builder = builder.Where(sq.Eq{dbCol: coerce(dbCol, val)})
		}
	}

	// Several sort keys are applied in field name order.
	for _, jsonField := range sortedKeys(filter.Sort) {
		dir := filter.Sort[jsonField]
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(dir) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}

	if filter.WithPagination {
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset >= 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	return builder
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// coerce turns query-string values for key columns into integers.
func coerce(dbCol string, val interface{}) interface{} {
	s, ok := val.(string)
	if !ok || !isKeyColumn(dbCol) {
		return val
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return val
}

func isKeyColumn(dbCol string) bool {
	return strings.HasSuffix(dbCol, "id") || strings.HasSuffix(dbCol, "identificacion")
}
