package elective

import "errors"

// ErrUnboundSymbol reports evaluation of a symbol absent from the
// supplied bindings.
var ErrUnboundSymbol = errors.New("elective: symbol not bound")
