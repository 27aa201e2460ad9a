package confirm

import (
	"fmt"
	"strconv"
	"strings"
)

// The chain compares untyped operands with one explicit rule: when both
// sides parse as numbers the comparison is numeric, otherwise it is a
// plain string comparison. Equality additionally accepts an exact
// string match, so "007" equals 7 and "on" equals "on".

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func looseEqual(value string, compare any) bool {
	vNum, vOK := toNumber(value)
	cNum, cOK := toNumber(compare)
	if vOK && cOK {
		return vNum == cNum
	}
	return value == fmt.Sprintf("%v", compare)
}

// compareOrd returns -1, 0 or 1 ordering value against compare.
func compareOrd(value string, compare any) int {
	vNum, vOK := toNumber(value)
	cNum, cOK := toNumber(compare)
	if vOK && cOK {
		switch {
		case vNum < cNum:
			return -1
		case vNum > cNum:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(value, fmt.Sprintf("%v", compare))
}
