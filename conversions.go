package roseredis

import (
	"encoding/json"
	"math"
	"strconv"
)

// Reply conversions for use inside handlers. Stores commonly answer with strings or byte
// slices for numeric data, so those are parsed.

// Int converts reply to an int64. Floats must be whole numbers.
func Int(reply any) (int64, bool) {

	switch r := reply.(type) {
	case string:
		i, err := strconv.ParseInt(r, 10, 64)
		return i, err == nil
	case []byte:
		return Int(string(r))
	}

	n, ok := toNumber(reply)
	if !ok {
		return 0, false
	}
	if n.isInt {
		return n.i, true
	}
	if n.f != math.Trunc(n.f) || math.IsInf(n.f, 0) {
		return 0, false
	}
	return int64(n.f), true
}

// Float converts reply to a float64.
func Float(reply any) (float64, bool) {

	switch r := reply.(type) {
	case string:
		f, err := strconv.ParseFloat(r, 64)
		return f, err == nil
	case []byte:
		return Float(string(r))
	}

	n, ok := toNumber(reply)
	if !ok {
		return 0, false
	}
	return n.float(), true
}

// String converts reply to a string. Numbers are formatted in base 10.
func String(reply any) (string, bool) {

	switch r := reply.(type) {
	case string:
		return r, true
	case []byte:
		return string(r), true
	}

	n, ok := toNumber(reply)
	if !ok {
		return "", false
	}
	if n.isInt {
		return strconv.FormatInt(n.i, 10), true
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64), true
}

// Bool converts reply to a bool. Integer replies are true when non-zero, which covers
// commands like EXISTS and SISMEMBER.
func Bool(reply any) (bool, bool) {

	switch r := reply.(type) {
	case bool:
		return r, true
	case string:
		if r == "OK" {
			return true, true
		}
		b, err := strconv.ParseBool(r)
		return b, err == nil
	case []byte:
		return Bool(string(r))
	}

	n, ok := toNumber(reply)
	if !ok {
		return false, false
	}
	return n.float() != 0, true
}

// number is the value type $inc works with. Integers stay integers until a float is
// involved.
type number struct {
	isInt bool
	i     int64
	f     float64
}

func toNumber(v any) (number, bool) {

	switch t := v.(type) {
	case int:
		return number{isInt: true, i: int64(t)}, true
	case int8:
		return number{isInt: true, i: int64(t)}, true
	case int16:
		return number{isInt: true, i: int64(t)}, true
	case int32:
		return number{isInt: true, i: int64(t)}, true
	case int64:
		return number{isInt: true, i: t}, true
	case uint:
		return fromUint(uint64(t)), true
	case uint8:
		return number{isInt: true, i: int64(t)}, true
	case uint16:
		return number{isInt: true, i: int64(t)}, true
	case uint32:
		return number{isInt: true, i: int64(t)}, true
	case uint64:
		return fromUint(t), true
	case float32:
		return number{f: float64(t)}, true
	case float64:
		return number{f: t}, true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return number{isInt: true, i: i}, true
		}
		if f, err := t.Float64(); err == nil {
			return number{f: f}, true
		}
	}
	return number{}, false
}

// fromUint falls back to float64 above MaxInt64.
func fromUint(u uint64) number {
	if u > math.MaxInt64 {
		return number{f: float64(u)}
	}
	return number{isInt: true, i: int64(u)}
}

func (n number) float() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

func (n number) add(d number) number {
	if n.isInt && d.isInt {
		return number{isInt: true, i: n.i + d.i}
	}
	return number{f: n.float() + d.float()}
}

func (n number) value() any {
	if n.isInt {
		return n.i
	}
	return n.f
}
