package validatorjs

// orDefault returns v when p(v) holds and fallback otherwise.  Neither
// value is inspected beyond p.
func orDefault(p func(Value) bool, v, fallback Value) Value {
	if p(v) {
		return v
	}
	return fallback
}

// GetObjectOrDefault returns v if it is a plain Object, else fallback.
func GetObjectOrDefault(v, fallback Value) Value { return orDefault(IsObject, v, fallback) }

// GetStringOrDefault returns v if it is a String, else fallback.
func GetStringOrDefault(v, fallback Value) Value { return orDefault(IsString, v, fallback) }

// GetNumberOrDefault returns v if it is a finite Number, else fallback.
func GetNumberOrDefault(v, fallback Value) Value { return orDefault(IsNumber, v, fallback) }

// GetArrayOrDefault returns v if it is an Array, else fallback.
func GetArrayOrDefault(v, fallback Value) Value { return orDefault(IsArray, v, fallback) }

// GetPositiveNumberOrDefault returns v if it is a finite Number above zero,
// else fallback.
func GetPositiveNumberOrDefault(v, fallback Value) Value {
	return orDefault(IsPositiveNumber, v, fallback)
}

// GetNegativeNumberOrDefault returns v if it is a finite Number below zero,
// else fallback.
func GetNegativeNumberOrDefault(v, fallback Value) Value {
	return orDefault(IsNegativeNumber, v, fallback)
}

// GetNullIfUndefined normalises the never-declared marker (or a nil Value)
// to Null and returns anything else unchanged.
func GetNullIfUndefined(v Value) Value {
	if IsUndefined(v) {
		return Null{}
	}
	return v
}

// ── Native accessors ────────────────────────────────────────

// valueOr unwraps v as T when p(v) holds, otherwise returns fallback.
func valueOr[T Value, R any](p func(Value) bool, v Value, fallback R, conv func(T) R) R {
	if t, ok := v.(T); ok && p(v) {
		return conv(t)
	}
	return fallback
}

func toString(s String) string { return string(s) }
func toFloat(n Number) float64 { return float64(n) }

// StringOr returns the Go string held by v, or fallback.
func StringOr(v Value, fallback string) string {
	return valueOr(IsString, v, fallback, toString)
}

// NumberOr returns the finite float64 held by v, or fallback.
func NumberOr(v Value, fallback float64) float64 {
	return valueOr(IsNumber, v, fallback, toFloat)
}

// PositiveNumberOr is NumberOr restricted to values above zero.
func PositiveNumberOr(v Value, fallback float64) float64 {
	return valueOr(IsPositiveNumber, v, fallback, toFloat)
}

// NegativeNumberOr is NumberOr restricted to values below zero.
func NegativeNumberOr(v Value, fallback float64) float64 {
	return valueOr(IsNegativeNumber, v, fallback, toFloat)
}
