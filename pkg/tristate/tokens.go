package tristate

import (
	"math"

	goSet "github.com/deckarep/golang-set"
)

// Token sets. They are built once here and never mutated; a Resolver that
// needs its unset key in the null set works on a clone.
var (
	// nullTokens are the external values meaning "no value".
	nullTokens = goSet.NewSet(nil, "", "null")

	// falseTokens are the values the usual boolean cast treats as false.
	falseTokens = goSet.NewSet(
		false, int64(0),
		"0", "f", "F", "false", "FALSE", "off", "OFF",
	)

	// trueTokens are only consulted when validating an unset key.
	trueTokens = goSet.NewSet(
		true, int64(1),
		"1", "t", "T", "true", "TRUE", "on", "ON",
	)
)

// tokenKey maps v onto the key the token sets are built with. Integers of
// any width collapse to int64. ok is false for values that can never be a
// token, including non-comparable ones that would panic as map keys.
func tokenKey(v any) (key any, ok bool) {
	switch k := v.(type) {
	case nil:
		return nil, true
	case string, bool:
		return k, true
	case int:
		return int64(k), true
	case int8:
		return int64(k), true
	case int16:
		return int64(k), true
	case int32:
		return int64(k), true
	case int64:
		return k, true
	case uint:
		return uintKey(uint64(k))
	case uint8:
		return int64(k), true
	case uint16:
		return int64(k), true
	case uint32:
		return int64(k), true
	case uint64:
		return uintKey(k)
	}
	return nil, false
}

func uintKey(u uint64) (any, bool) {
	if u > math.MaxInt64 {
		return nil, false
	}
	return int64(u), true
}
