package advanced

import "github.com/pkg/errors"

// Broken invariants in the hull and cloud bookkeeping are programming errors,
// not conditions a caller can react to, and they show up deep inside loops.
// Rather than thread errors through every mutation, we panic, and the public
// API in the root package recovers to convert to an error.

type CoverError error

// Panic with a CoverError.
func fatalf(format string, args ...interface{}) {
	panic(CoverError(errors.Errorf(format, args...)))
}

func HandleCoverPanicRecover(r interface{}) error {
	if r != nil {
		if coverError, ok := r.(CoverError); ok {
			return coverError
		}
		panic(r)
	}
	return nil
}
