package query

import "fmt"

// Condition represents a WHERE clause condition. Implementations
// generate SQL fragments with Spanner named parameters (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "pending") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// inCondition implements membership against an array parameter.
type inCondition struct {
	field  string
	values []string
}

// In creates a WHERE condition matching any of the given values, using
// UNNEST so a single array parameter covers lists of any length.
// Example: In("category_id", ids) generates "category_id IN UNNEST(@p0)"
func In(field string, values []string) Condition {
	return &inCondition{
		field:  field,
		values: values,
	}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.values,
	}
	return sql, params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("code") generates "code IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NULL", c.field)
	return sql, map[string]interface{}{}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("code") generates "code IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NOT NULL", c.field)
	return sql, map[string]interface{}{}
}
