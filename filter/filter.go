package filter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Matches 判断一条记录是否满足全部过滤条件
// 规则：
//   - key 为 "集合.字段" 形式时，要求集合中至少有一个元素的该字段数值等于条件值
//   - 条件值可解析为整数时，按整数比较记录字段
//   - 其余情况按字符串忽略大小写比较
//
// 空条件恒为真；记录缺少条件字段视为不匹配。
func Matches(record map[string]any, constraints map[string]string) bool {
	for key, value := range constraints {
		collection, field, nested := strings.Cut(key, ".")
		if nested {
			if !matchNested(record, collection, field, value) {
				return false
			}
			continue
		}

		fieldValue, ok := record[key]
		if !ok || fieldValue == nil {
			return false
		}

		if want, err := strconv.Atoi(value); err == nil {
			got, ok := toInt(fieldValue)
			if !ok || got != want {
				return false
			}
			continue
		}

		if !strings.EqualFold(toString(fieldValue), value) {
			return false
		}
	}
	return true
}

// matchNested 嵌套集合成员匹配：集合中任一元素的数值字段等于条件值即命中
func matchNested(record map[string]any, collection, field, value string) bool {
	want, err := strconv.Atoi(value)
	if err != nil {
		return false
	}

	items, ok := record[collection].([]any)
	if !ok {
		return false
	}

	for _, item := range items {
		sub, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if got, ok := toInt(sub[field]); ok && got == want {
			return true
		}
	}
	return false
}

// Apply 将任意模型切片转换为通用记录后应用过滤条件
func Apply(items any, constraints map[string]string) []map[string]any {
	records := Records(items)
	if len(constraints) == 0 {
		return records
	}

	filtered := make([]map[string]any, 0, len(records))
	for _, record := range records {
		if Matches(record, constraints) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Records 通过 JSON 往返把模型切片转成通用记录切片
func Records(items any) []map[string]any {
	data, err := json.Marshal(items)
	if err != nil {
		return []map[string]any{}
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return []map[string]any{}
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records
}

// FromQuery 从查询参数提取过滤条件（同名参数只取第一个）
func FromQuery(values url.Values) map[string]string {
	constraints := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			constraints[key] = vals[0]
		}
	}
	return constraints
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		n := int(x)
		return n, float64(n) == x
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	case json.Number:
		n, err := x.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
