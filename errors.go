package validatorjs

import "fmt"

// Error codes reported by the JSON adapter.  Predicates and accessors
// never fail.
const (
	ErrSyntax     = "ERR_SYNTAX"
	ErrType       = "ERR_TYPE"
	ErrLimitDepth = "ERR_LIMIT_DEPTH"
	ErrLimitSize  = "ERR_LIMIT_SIZE"
)

// ValueError is the error type returned by ParseJSON and EncodeJSON.
// Callers compare the Code field against the ERR_* strings.
type ValueError struct {
	Code string
	Msg  string
}

func (e *ValueError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func newErr(code, msg string) *ValueError {
	return &ValueError{Code: code, Msg: msg}
}
