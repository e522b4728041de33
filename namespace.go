package validatorjs

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/go-softwarelab/common/pkg/slogx"
)

// Predicate is a unary check over a Value.
type Predicate func(Value) bool

// localPredicates lists the unary predicates defined in this package
// under their published names.
var localPredicates = []struct {
	name string
	fn   Predicate
}{
	{"isNull", IsNull},
	{"isUndefined", IsUndefined},
	{"isNullOrUndefined", IsNullOrUndefined},
	{"isString", IsString},
	{"isStringOrNull", IsStringOrNull},
	{"isNumber", IsNumber},
	{"isNumberOrNull", IsNumberOrNull},
	{"isPositiveNumber", IsPositiveNumber},
	{"isPositiveNumberOrNull", IsPositiveNumberOrNull},
	{"isNegativeNumber", IsNegativeNumber},
	{"isNegativeNumberOrNull", IsNegativeNumberOrNull},
	{"isArray", IsArray},
	{"isArrayOrNull", IsArrayOrNull},
	{"isFunction", IsFunction},
	{"isObject", IsObject},
	{"isSet", IsSet},
	{"isMap", IsMap},
	{"isWeakSet", IsWeakSet},
	{"isWeakMap", IsWeakMap},
	{"isEmptyString", IsEmptyString},
	{"isEmptyStringOrNull", IsEmptyStringOrNull},
	{"isNonEmptyString", IsNonEmptyString},
	{"isEmptyArray", IsEmptyArray},
	{"isEmptyArrayOrNull", IsEmptyArrayOrNull},
	{"isNonEmptyArray", IsNonEmptyArray},
}

// liftString turns a validator tag into a Predicate.  Only String values
// can pass.
func liftString(tag string) Predicate {
	return func(v Value) bool {
		s, ok := v.(String)
		return ok && Validate(string(s), tag)
	}
}

// buildNamespace merges the re-exported validator checks with the local
// predicates.  Local names are written last and win on collision.
func buildNamespace() map[string]Predicate {
	log := logger()
	ns := make(map[string]Predicate, len(reexports)+len(localPredicates))
	for _, r := range reexports {
		ns[r.name] = liftString(r.tag)
	}
	shadowed := 0
	for _, p := range localPredicates {
		if _, ok := ns[p.name]; ok {
			shadowed++
			if slogx.IsDebug(log) {
				log.Debug("local predicate shadows validator check", slog.String("name", p.name))
			}
		}
		ns[p.name] = p.fn
	}
	log.Debug("namespace built", slog.Int("names", len(ns)), slog.Int("shadowed", shadowed))
	return ns
}

var namespace = sync.OnceValue(buildNamespace)

// Namespace returns a copy of the flat name → Predicate table.
func Namespace() map[string]Predicate {
	return maps.Clone(namespace())
}

// Lookup returns the predicate published under name.
func Lookup(name string) (Predicate, bool) {
	p, ok := namespace()[name]
	return p, ok
}
