package validatorjs

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// stringValidator is shared; *validator.Validate is safe for concurrent use
// once built.
var stringValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

// Validate reports whether s passes the validator tag expression (for
// example "email" or "min=3,max=8").  An empty, malformed or unknown tag
// yields false.
func Validate(s, tag string) (ok bool) {
	// Var treats an empty tag as "no constraints" and accepts anything.
	if tag == "" {
		return false
	}
	defer func() {
		// The validator panics on tags it does not know.
		if recover() != nil {
			ok = false
		}
	}()
	return stringValidator().Var(s, tag) == nil
}

// reexport names one validator tag under its published name.
type reexport struct {
	name string
	tag  string
}

// reexports lists the validator checks published in the namespace, in
// publication order.  "isNumber" is shadowed by the local predicate.
var reexports = []reexport{
	{"isEmail", "email"},
	{"isURL", "url"},
	{"isURI", "uri"},
	{"isUUID", "uuid"},
	{"isIP", "ip"},
	{"isIPv4", "ipv4"},
	{"isIPv6", "ipv6"},
	{"isCIDR", "cidr"},
	{"isMACAddress", "mac"},
	{"isHostname", "hostname"},
	{"isFQDN", "fqdn"},
	{"isAlpha", "alpha"},
	{"isAlphanumeric", "alphanum"},
	{"isNumeric", "numeric"},
	{"isNumber", "number"},
	{"isHexadecimal", "hexadecimal"},
	{"isHexColor", "hexcolor"},
	{"isBase64", "base64"},
	{"isJSON", "json"},
	{"isLowercase", "lowercase"},
	{"isUppercase", "uppercase"},
	{"isASCII", "ascii"},
	{"isLatitude", "latitude"},
	{"isLongitude", "longitude"},
	{"isCreditCard", "credit_card"},
	{"isISBN", "isbn"},
	{"isSemver", "semver"},
	{"isJWT", "jwt"},
	{"isE164", "e164"},
	{"isMD5", "md5"},
	{"isSHA256", "sha256"},
	{"isDataURI", "datauri"},
	{"isBoolean", "boolean"},
}

// IsEmail reports whether s passes the "email" check.
func IsEmail(s string) bool { return Validate(s, "email") }

// IsURL reports whether s passes the "url" check.
func IsURL(s string) bool { return Validate(s, "url") }

// IsURI reports whether s passes the "uri" check.
func IsURI(s string) bool { return Validate(s, "uri") }

// IsUUID reports whether s passes the "uuid" check.
func IsUUID(s string) bool { return Validate(s, "uuid") }

// IsIP reports whether s passes the "ip" check.
func IsIP(s string) bool { return Validate(s, "ip") }

// IsIPv4 reports whether s passes the "ipv4" check.
func IsIPv4(s string) bool { return Validate(s, "ipv4") }

// IsIPv6 reports whether s passes the "ipv6" check.
func IsIPv6(s string) bool { return Validate(s, "ipv6") }

// IsCIDR reports whether s passes the "cidr" check.
func IsCIDR(s string) bool { return Validate(s, "cidr") }

// IsMACAddress reports whether s passes the "mac" check.
func IsMACAddress(s string) bool { return Validate(s, "mac") }

// IsHostname reports whether s passes the "hostname" check.
func IsHostname(s string) bool { return Validate(s, "hostname") }

// IsFQDN reports whether s passes the "fqdn" check.
func IsFQDN(s string) bool { return Validate(s, "fqdn") }

// IsAlpha reports whether s passes the "alpha" check.
func IsAlpha(s string) bool { return Validate(s, "alpha") }

// IsAlphanumeric reports whether s passes the "alphanum" check.
func IsAlphanumeric(s string) bool { return Validate(s, "alphanum") }

// IsNumeric reports whether s passes the "numeric" check.
func IsNumeric(s string) bool { return Validate(s, "numeric") }

// IsHexadecimal reports whether s passes the "hexadecimal" check.
func IsHexadecimal(s string) bool { return Validate(s, "hexadecimal") }

// IsHexColor reports whether s passes the "hexcolor" check.
func IsHexColor(s string) bool { return Validate(s, "hexcolor") }

// IsBase64 reports whether s passes the "base64" check.
func IsBase64(s string) bool { return Validate(s, "base64") }

// IsJSON reports whether s passes the "json" check.
func IsJSON(s string) bool { return Validate(s, "json") }

// IsLowercase reports whether s passes the "lowercase" check.
func IsLowercase(s string) bool { return Validate(s, "lowercase") }

// IsUppercase reports whether s passes the "uppercase" check.
func IsUppercase(s string) bool { return Validate(s, "uppercase") }

// IsASCII reports whether s passes the "ascii" check.
func IsASCII(s string) bool { return Validate(s, "ascii") }

// IsLatitude reports whether s passes the "latitude" check.
func IsLatitude(s string) bool { return Validate(s, "latitude") }

// IsLongitude reports whether s passes the "longitude" check.
func IsLongitude(s string) bool { return Validate(s, "longitude") }

// IsCreditCard reports whether s passes the "credit_card" check.
func IsCreditCard(s string) bool { return Validate(s, "credit_card") }

// IsISBN reports whether s passes the "isbn" check.
func IsISBN(s string) bool { return Validate(s, "isbn") }

// IsSemver reports whether s passes the "semver" check.
func IsSemver(s string) bool { return Validate(s, "semver") }

// IsJWT reports whether s passes the "jwt" check.
func IsJWT(s string) bool { return Validate(s, "jwt") }

// IsE164 reports whether s passes the "e164" check.
func IsE164(s string) bool { return Validate(s, "e164") }

// IsMD5 reports whether s passes the "md5" check.
func IsMD5(s string) bool { return Validate(s, "md5") }

// IsSHA256 reports whether s passes the "sha256" check.
func IsSHA256(s string) bool { return Validate(s, "sha256") }

// IsDataURI reports whether s passes the "datauri" check.
func IsDataURI(s string) bool { return Validate(s, "datauri") }

// IsBoolean reports whether s passes the "boolean" check.
func IsBoolean(s string) bool { return Validate(s, "boolean") }
