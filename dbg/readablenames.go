package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers and other comparable values into random readable
// names, which are much easier to tell apart in log output than addresses. It
// leaks memory for every distinct object named, so it belongs in debug output
// only.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if value.IsNil() {
			return "Ø"
		}
	}
	// Uncomparable values can't be map keys. Slices, maps and funcs are named
	// by address, anything else by its printed value.
	if !value.Type().Comparable() {
		switch value.Kind() {
		case reflect.Map, reflect.Slice, reflect.Func:
			obj = value.Pointer()
		default:
			obj = fmt.Sprintf("%#v", obj)
		}
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
