package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() map[string]any {
	return map[string]any{
		"id":         float64(7),
		"username":   "Alice",
		"first_name": "Alice",
		"age":        float64(25),
		"categories": []any{
			map[string]any{"user_id": float64(7), "category_id": float64(3)},
			map[string]any{"user_id": float64(7), "category_id": float64(5)},
		},
	}
}

func TestMatchesEmptyConstraints(t *testing.T) {
	assert.True(t, Matches(sampleUser(), map[string]string{}))
	assert.True(t, Matches(map[string]any{}, nil))
}

func TestMatchesNumericConstraint(t *testing.T) {
	assert.True(t, Matches(sampleUser(), map[string]string{"age": "25"}))
	assert.False(t, Matches(sampleUser(), map[string]string{"age": "30"}))
	// 字符串形式的数字字段同样按整数比较
	assert.True(t, Matches(map[string]any{"age": "25"}, map[string]string{"age": "25"}))
}

func TestMatchesStringCaseInsensitive(t *testing.T) {
	assert.True(t, Matches(sampleUser(), map[string]string{"username": "ALICE"}))
	assert.True(t, Matches(sampleUser(), map[string]string{"username": "alice"}))
	assert.False(t, Matches(sampleUser(), map[string]string{"username": "bob"}))
}

func TestMatchesNestedCollection(t *testing.T) {
	assert.True(t, Matches(sampleUser(), map[string]string{"categories.category_id": "5"}))
	assert.False(t, Matches(sampleUser(), map[string]string{"categories.category_id": "9"}))
	// 非数值的嵌套条件视为不匹配
	assert.False(t, Matches(sampleUser(), map[string]string{"categories.category_id": "abc"}))
	// 记录没有该集合
	assert.False(t, Matches(map[string]any{"id": float64(1)}, map[string]string{"categories.category_id": "5"}))
}

func TestMatchesUnknownField(t *testing.T) {
	assert.False(t, Matches(sampleUser(), map[string]string{"missing": "x"}))
	assert.False(t, Matches(sampleUser(), map[string]string{"missing": "3"}))
}

func TestMatchesMultipleConstraints(t *testing.T) {
	constraints := map[string]string{
		"username":               "alice",
		"age":                    "25",
		"categories.category_id": "3",
	}
	assert.True(t, Matches(sampleUser(), constraints))

	constraints["age"] = "26"
	assert.False(t, Matches(sampleUser(), constraints))
}

func TestApply(t *testing.T) {
	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	rows := []row{{1, "Hiking"}, {2, "Cooking"}, {3, "hiking"}}

	out := Apply(rows, map[string]string{"name": "HIKING"})
	require.Len(t, out, 2)
	assert.Equal(t, float64(1), out[0]["id"])
	assert.Equal(t, float64(3), out[1]["id"])

	// 无条件时原样返回
	assert.Len(t, Apply(rows, nil), 3)
	// 空切片返回空集合而不是 nil
	assert.NotNil(t, Apply([]row{}, nil))
}

func TestFromQuery(t *testing.T) {
	values := url.Values{"age": {"25", "30"}, "username": {"alice"}}
	constraints := FromQuery(values)
	assert.Equal(t, map[string]string{"age": "25", "username": "alice"}, constraints)
}
