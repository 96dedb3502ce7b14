package fn

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/ib-77/coerce/pkg/coerce"
)

// Step is a single transform stage: one input value in, one output value
// out, or an error when the input cannot be transformed. A step that can
// fail should return a coerce.CoercionError so callers can tell transform
// failures apart from anything else.
//
// A step may return a coerce.Result[any] as its output value; the
// composition stops there and the result is treated as final.
type Step func(in any) (any, error)

type step struct {
	name string
	call Step
}

// Fn is an immutable, left-to-right composition of named steps. The zero
// value is the identity transform.
type Fn struct {
	steps []step
}

// Wrap builds an Fn from a single step, naming it after the function
// symbol. A nil step is a configuration error.
func Wrap(s Step) (Fn, error) {
	if s == nil {
		return Fn{}, coerce.ErrMissingFn
	}
	return Fn{steps: []step{{name: funcName(s), call: s}}}, nil
}

// Named is Wrap with an explicit step name, used when the symbol name of
// an anonymous function would not read well in descriptors.
func Named(name string, s Step) (Fn, error) {
	if s == nil {
		return Fn{}, coerce.ErrMissingFn
	}
	return Fn{steps: []step{{name: name, call: s}}}, nil
}

// MustWrap is Wrap that panics on a nil step.
func MustWrap(s Step) Fn {
	f, err := Wrap(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Invoke runs the steps left to right, the input of step i+1 being the
// output of step i. The first error stops the run and is returned as-is.
// A step output that is a coerce.Result[any] is returned immediately
// without running later steps.
func (f Fn) Invoke(in any) (any, error) {
	out := in
	for _, s := range f.steps {
		next, err := s.call(out)
		if err != nil {
			return nil, err
		}
		if r, ok := next.(coerce.Result[any]); ok {
			return r, nil
		}
		out = next
	}
	return out, nil
}

// Append returns a new Fn that runs f, then other.
func (f Fn) Append(other Fn) Fn {
	steps := make([]step, 0, len(f.steps)+len(other.steps))
	steps = append(steps, f.steps...)
	steps = append(steps, other.steps...)
	return Fn{steps: steps}
}

// Prepend returns a new Fn that runs other, then f.
func (f Fn) Prepend(other Fn) Fn {
	return other.Append(f)
}

// Descriptor returns a structural description of the composed steps.
func (f Fn) Descriptor() coerce.Node {
	args := make([]any, 0, len(f.steps))
	for _, s := range f.steps {
		args = append(args, s.name)
	}
	return coerce.Node{Tag: "fn", Args: args}
}

// Steps returns the step names in invocation order.
func (f Fn) Steps() []string {
	names := make([]string, 0, len(f.steps))
	for _, s := range f.steps {
		names = append(names, s.name)
	}
	return names
}

// Equal reports whether both compositions hold the same steps, compared
// by name and function identity.
func (f Fn) Equal(other Fn) bool {
	if len(f.steps) != len(other.steps) {
		return false
	}
	for i, s := range f.steps {
		o := other.steps[i]
		if s.name != o.name {
			return false
		}
		if reflect.ValueOf(s.call).Pointer() != reflect.ValueOf(o.call).Pointer() {
			return false
		}
	}
	return true
}

// IsZero reports whether f holds no steps.
func (f Fn) IsZero() bool {
	return len(f.steps) == 0
}

func funcName(s Step) string {
	name := runtime.FuncForPC(reflect.ValueOf(s).Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
