package gopoly

import "github.com/zeebo/errs"

var (
	// IndexError is the class of errors returned for out-of-range term access.
	IndexError = errs.Class("index")

	// DecodeError is the class of errors returned for malformed JSON input
	// and malformed tool parameters.
	DecodeError = errs.Class("decode")
)
