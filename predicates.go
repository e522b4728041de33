package validatorjs

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-softwarelab/common/pkg/is"
)

// ── Absent markers ──────────────────────────────────────────

// IsNull reports whether v is the declared-absent marker.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// IsUndefined reports whether v is the never-declared marker or a nil Value.
func IsUndefined(v Value) bool {
	switch v.(type) {
	case nil, Undefined:
		return true
	}
	return false
}

// IsNullOrUndefined reports whether v is either absent marker.
func IsNullOrUndefined(v Value) bool {
	return IsUndefined(v) || IsNull(v)
}

// ── Runtime type ────────────────────────────────────────────

// IsString reports whether v is a String.
func IsString(v Value) bool {
	_, ok := v.(String)
	return ok
}

// IsArray reports whether v is an Array.
func IsArray(v Value) bool {
	_, ok := v.(*Array)
	return ok
}

// IsFunction reports whether v is callable.
func IsFunction(v Value) bool {
	return TypeOf(v) == "function"
}

// IsNumber reports whether v is a Number that is neither NaN nor infinite.
func IsNumber(v Value) bool {
	n, ok := v.(Number)
	return ok && !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
}

// IsSet reports whether v is a Set.
func IsSet(v Value) bool {
	_, ok := v.(*Set)
	return ok
}

// IsMap reports whether v is a Map.
func IsMap(v Value) bool {
	_, ok := v.(*Map)
	return ok
}

// IsWeakSet reports whether v is a WeakSet.
func IsWeakSet(v Value) bool {
	_, ok := v.(*WeakSet)
	return ok
}

// IsWeakMap reports whether v is a WeakMap.
func IsWeakMap(v Value) bool {
	_, ok := v.(*WeakMap)
	return ok
}

// IsObject reports whether v is a structural record: tagged "object" and
// not null, an array, or any of the keyed containers.
func IsObject(v Value) bool {
	return !IsNull(v) &&
		!IsSet(v) &&
		!IsMap(v) &&
		!IsWeakMap(v) &&
		!IsWeakSet(v) &&
		!IsArray(v) &&
		TypeOf(v) == "object"
}

// ── Sign ────────────────────────────────────────────────────

// IsPositiveNumber reports whether v is a finite Number above zero.
func IsPositiveNumber(v Value) bool {
	n, ok := v.(Number)
	return ok && IsNumber(n) && is.Greater(float64(n), 0)
}

// IsNegativeNumber reports whether v is a finite Number below zero.
func IsNegativeNumber(v Value) bool {
	n, ok := v.(Number)
	return ok && IsNumber(n) && is.Less(float64(n), 0)
}

// ── Emptiness ───────────────────────────────────────────────

// isTrimmable matches the characters String.prototype.trim strips:
// Unicode white space except NEL (U+0085), plus the byte order mark.
func isTrimmable(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// IsEmptyString reports whether v is a String with nothing but white space.
func IsEmptyString(v Value) bool {
	s, ok := v.(String)
	return ok && len(strings.TrimFunc(string(s), isTrimmable)) == 0
}

// IsEmptyArray reports whether v is an Array with no elements.
func IsEmptyArray(v Value) bool {
	a, ok := v.(*Array)
	return ok && a.Len() == 0
}

// IsNonEmptyString is the negation of IsEmptyString, so it also holds for
// values that are not strings at all.
func IsNonEmptyString(v Value) bool {
	return !IsEmptyString(v)
}

// IsNonEmptyArray is the negation of IsEmptyArray.
func IsNonEmptyArray(v Value) bool {
	return !IsEmptyArray(v)
}

// ── Nullable variants ───────────────────────────────────────
//
// Each accepts the declared-absent marker in addition to its base
// predicate.  Undefined is not accepted.

func orNull(p func(Value) bool) func(Value) bool {
	return func(v Value) bool {
		return IsNull(v) || p(v)
	}
}

var (
	isStringOrNull         = orNull(IsString)
	isArrayOrNull          = orNull(IsArray)
	isNumberOrNull         = orNull(IsNumber)
	isPositiveNumberOrNull = orNull(IsPositiveNumber)
	isNegativeNumberOrNull = orNull(IsNegativeNumber)
	isEmptyStringOrNull    = orNull(IsEmptyString)
	isEmptyArrayOrNull     = orNull(IsEmptyArray)
)

// IsStringOrNull reports whether v is Null or a String.
func IsStringOrNull(v Value) bool { return isStringOrNull(v) }

// IsArrayOrNull reports whether v is Null or an Array.
func IsArrayOrNull(v Value) bool { return isArrayOrNull(v) }

// IsNumberOrNull reports whether v is Null or a finite Number.
func IsNumberOrNull(v Value) bool { return isNumberOrNull(v) }

// IsPositiveNumberOrNull reports whether v is Null or a finite Number above zero.
func IsPositiveNumberOrNull(v Value) bool { return isPositiveNumberOrNull(v) }

// IsNegativeNumberOrNull reports whether v is Null or a finite Number below zero.
func IsNegativeNumberOrNull(v Value) bool { return isNegativeNumberOrNull(v) }

// IsEmptyStringOrNull reports whether v is Null or a blank String.
func IsEmptyStringOrNull(v Value) bool { return isEmptyStringOrNull(v) }

// IsEmptyArrayOrNull reports whether v is Null or an Array with no elements.
func IsEmptyArrayOrNull(v Value) bool { return isEmptyArrayOrNull(v) }
