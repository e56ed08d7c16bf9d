package service

import (
	"fmt"
	"math"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindFloat
	kindCount
	kindBool
)

type fieldRule struct {
	kind  fieldKind
	check func(v any) bool
}

// immutableFields никогда не попадают в обновление
var immutableFields = map[string]struct{}{
	"_id":        {},
	"id":         {},
	"timestamp":  {},
	"created_at": {},
}

var incidentFields = map[string]fieldRule{
	"category":      {kind: kindString},
	"urgency":       {kind: kindString},
	"description":   {kind: kindString},
	"latitude":      {kind: kindFloat, check: inRange(-90, 90)},
	"longitude":     {kind: kindFloat, check: inRange(-180, 180)},
	"contact_email": {kind: kindString},
	"contact_phone": {kind: kindString},
	"is_verified":   {kind: kindBool},
	"cluster_count": {kind: kindCount, check: func(v any) bool { return v.(int) >= 1 }},
	"like_count":    {kind: kindCount},
	"dislike_count": {kind: kindCount},
}

var highlightFields = map[string]fieldRule{
	"start_lat":   {kind: kindFloat, check: inRange(-90, 90)},
	"start_lng":   {kind: kindFloat, check: inRange(-180, 180)},
	"end_lat":     {kind: kindFloat, check: inRange(-90, 90)},
	"end_lng":     {kind: kindFloat, check: inRange(-180, 180)},
	"color":       {kind: kindString, check: oneOf(HighlightColors...)},
	"reason":      {kind: kindString, check: oneOf(HighlightReasons...)},
	"description": {kind: kindString},
	"created_by":  {kind: kindString},
}

// sanitizePatch оставляет только изменяемые поля и приводит значения к
// каноническим типам (string, float64, int, bool). Неизвестные поля
// отбрасываются, пустой результат считается ошибкой.
func sanitizePatch(fields map[string]any, rules map[string]fieldRule) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for name, raw := range fields {
		if _, ok := immutableFields[name]; ok {
			continue
		}
		rule, ok := rules[name]
		if !ok {
			continue
		}
		v, ok := coerce(raw, rule.kind)
		if !ok || (rule.check != nil && !rule.check(v)) {
			return nil, fmt.Errorf("%w: invalid value for field %q", ErrInvalidArgument, name)
		}
		out[name] = v
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields provided", ErrInvalidArgument)
	}
	return out, nil
}

func coerce(raw any, kind fieldKind) (any, bool) {
	switch kind {
	case kindString:
		s, ok := raw.(string)
		return s, ok
	case kindBool:
		b, ok := raw.(bool)
		return b, ok
	case kindFloat:
		f, ok := toFloat(raw)
		return f, ok
	case kindCount:
		f, ok := toFloat(raw)
		if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
			return nil, false
		}
		return int(f), true
	}
	return nil, false
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func inRange(lo, hi float64) func(any) bool {
	return func(v any) bool {
		f := v.(float64)
		return f >= lo && f <= hi
	}
}

func oneOf(values ...string) func(any) bool {
	return func(v any) bool {
		s := v.(string)
		for _, allowed := range values {
			if s == allowed {
				return true
			}
		}
		return false
	}
}
