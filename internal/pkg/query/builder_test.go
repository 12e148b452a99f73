package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("promotions").
		Select("promotion_id", "name", "scope").
		Build()

	assert.Equal(t, "SELECT promotion_id, name, scope FROM promotions", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("promotions").Build()

	assert.Equal(t, "SELECT * FROM promotions", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("promotions").
		Select("promotion_id").
		Where(Eq("scope", "category")).
		Where(Eq("is_active", true)).
		Build()

	assert.Equal(t, "SELECT promotion_id FROM promotions WHERE scope = @p0 AND is_active = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "category",
		"p1": true,
	}, stmt.Params)
}

func TestBuilder_In(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(In("category_id", []string{"cat-1", "cat-2"})).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE category_id IN UNNEST(@p0)", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": []string{"cat-1", "cat-2"},
	}, stmt.Params)
}

func TestBuilder_OrderByLimitOffset(t *testing.T) {
	stmt := From("orders").
		Select("order_id", "order_number").
		Where(Eq("status", "pending")).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(100).
		Build()

	expectedSQL := "SELECT order_id, order_number FROM orders WHERE status = @p0 ORDER BY created_at DESC LIMIT @limit OFFSET @offset"
	assert.Equal(t, expectedSQL, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":     "pending",
		"limit":  int64(50),
		"offset": int64(100),
	}, stmt.Params)
}

func TestBuilder_NullConditions(t *testing.T) {
	stmt := From("promotions").
		Select("promotion_id").
		Where(IsNull("code")).
		Where(IsNotNull("ends_at")).
		Build()

	assert.Equal(t, "SELECT promotion_id FROM promotions WHERE code IS NULL AND ends_at IS NOT NULL", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("promotions").Select("promotion_id")

	stmt1 := base.Where(Eq("scope", "all")).Build()
	stmt2 := base.Where(Eq("is_active", true)).Build()

	assert.Contains(t, stmt1.SQL, "scope = @p0")
	assert.NotContains(t, stmt1.SQL, "is_active")

	assert.Contains(t, stmt2.SQL, "is_active = @p0")
	assert.NotContains(t, stmt2.SQL, "scope")
}
