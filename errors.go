package genrand

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedType is matched by every error reporting a type that has no
// deterministic byte layout.
var ErrUnsupportedType = errors.New("genrand: unsupported type")

type UnsupportedTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Reason == "" {
		return fmt.Sprintf("genrand: unsupported type %s", name)
	}
	return fmt.Sprintf("genrand: unsupported type %s: %s", name, e.Reason)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
