package utils

import "fmt"

func RecoverWithError(err *error) {
	if rv := recover(); rv != nil {
		if e, ok := rv.(error); ok {
			*err = fmt.Errorf("got panic: %w", e)
			return
		}
		*err = fmt.Errorf("got panic: %v", rv)
	}
}
