// Package canonical приводит снимки паспорта/устройств/тарифа к
// нормализованному виду для сравнения и хеширования. Любые случайные
// различия представления (отсутствующие поля, порядок ключей, числовой тип)
// не должны давать ложное "данные изменились".
package canonical

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// NormalizeValue рекурсивно нормализует произвольное значение снимка:
// nil → "", decimal → float64, вложенные словари — с ключами-строками,
// последовательности — поэлементно, прочее — строковое представление.
// Скаляры (string/bool/числа) сохраняются как есть.
func NormalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		f, _ := val.Float64()
		return f
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return f
	case string, bool, int, int32, int64, float32, float64:
		return val
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = NormalizeValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = NormalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[key] = NormalizeValue(item)
		}
		return out
	default:
		return fmt.Sprint(val)
	}
}

// Passport возвращает канонический снимок паспорта: фиксированный набор
// полей, отсутствующие значения — пустые строки. Пустой вход — пустой снимок.
func Passport(snapshot map[string]any) map[string]any {
	if len(snapshot) == 0 {
		return map[string]any{}
	}

	fields := []string{
		"last_name", "first_name", "middle_name",
		"series", "number", "issued_by", "issue_code", "issue_date",
		"registration_address",
		"phone", "email", "name", "address",
	}

	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f] = AsString(snapshot[f])
	}

	return out
}

// Devices возвращает канонический список устройств, отсортированный по id.
// Фотографии в канонической форме не участвуют.
func Devices(devices []map[string]any) []map[string]any {
	if len(devices) == 0 {
		return []map[string]any{}
	}

	canon := make([]map[string]any, 0, len(devices))

	for _, raw := range devices {
		specs := raw["specs"]
		if specs == nil {
			specs = map[string]any{}
		}

		canon = append(canon, map[string]any{
			"id":          AsString(raw["id"]),
			"device_type": AsString(raw["device_type"]),
			"title":       AsString(raw["title"]),
			"description": AsString(raw["description"]),
			"specs":       NormalizeValue(specs),
			"extra_fee":   AsFloat(raw["extra_fee"]),
		})
	}

	sort.SliceStable(canon, func(i, j int) bool {
		return canon[i]["id"].(string) < canon[j]["id"].(string)
	})

	return canon
}

// Tariff возвращает канонический снимок тарифа. Служебные флаги
// device_added/device_added_count/was_signed_before_regen сюда намеренно
// не входят: они — бухгалтерия для биллинга, а не данные договора, и не
// должны сами по себе провоцировать перегенерацию.
func Tariff(snapshot map[string]any) map[string]any {
	if len(snapshot) == 0 {
		return map[string]any{}
	}

	var tariffID any
	if s := AsString(snapshot["tariff_id"]); s != "" {
		tariffID = s
	}

	return map[string]any{
		"tariff_id":        tariffID,
		"device_count":     AsInt(snapshot["device_count"]),
		"total_extra_fee":  AsFloat(snapshot["total_extra_fee"]),
		"extra_per_device": AsFloat(snapshot["extra_per_device"]),
		"base_fee":         AsFloat(snapshot["base_fee"]),
		"name":             AsString(snapshot["name"]),
		"client_full_name": AsString(snapshot["client_full_name"]),
	}
}

// DeviceAdditionStats сравнивает множества id устройств двух снимков.
// nil вместо снимка означает "базы для сравнения нет" — добавлений нет.
func DeviceAdditionStats(previous, current []map[string]any) (bool, int) {
	if previous == nil || current == nil {
		return false, 0
	}

	prevIDs := make(map[string]struct{}, len(previous))
	for _, item := range previous {
		if id := AsString(item["id"]); id != "" {
			prevIDs[id] = struct{}{}
		}
	}

	added := 0

	seen := make(map[string]struct{}, len(current))
	for _, item := range current {
		id := AsString(item["id"])
		if id == "" {
			continue
		}

		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := prevIDs[id]; !ok {
			added++
		}
	}

	return added > 0, added
}

// AsString приводит значение снимка к строке; nil и пустые значения — "".
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// AsFloat приводит значение снимка к float64; всё нечисловое — 0.
func AsFloat(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case decimal.Decimal:
		f, _ := val.Float64()
		return f
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		if val == "" {
			return 0
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// AsInt приводит значение снимка к int; всё нечисловое — 0.
func AsInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		return int(val)
	case float32:
		return int(val)
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return int(AsFloat(v))
		}
		return int(i)
	case string:
		if val == "" {
			return 0
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// AsBool приводит значение снимка к bool.
func AsBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1"
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return false
	}
}
