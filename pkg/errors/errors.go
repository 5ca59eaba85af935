// goldshop-gateway/pkg/errors/errors.go
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes shared by all units. The HTTP layer maps these to statuses;
// nothing below the handlers knows about HTTP.
const (
	CodeConfig            = "CONFIG"
	CodeUpstream          = "UPSTREAM"
	CodeUpstreamFormat    = "UPSTREAM_FORMAT"
	CodeInvalidAmount     = "INVALID_AMOUNT"
	CodeSignatureMismatch = "SIGNATURE_MISMATCH"
	CodeGateway           = "GATEWAY"
)

type E struct {
	Code    string
	Message string
	Err     error
}

func (e E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e E) Unwrap() error { return e.Err }

func New(code, msg string) error {
	return E{Code: code, Message: msg}
}

func Wrap(code, msg string, err error) error {
	return E{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the first E in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var e E
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}
