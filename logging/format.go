package logging

import (
	"fmt"
	"reflect"
	"strings"
)

// format applies args to template. When fmt cannot apply them (a bad verb, a
// wrong argument type, a missing, extra or badly indexed argument, or a
// String/Error method that panics) the raw template is returned instead.
func format(template string, args []any) string {
	if len(args) == 0 {
		return template
	}

	if !applies(template, args) {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// applies renders template once with every argument that could print "%!"
// on its own replaced by a silent checkedArg. What remains in the output is
// the template's literal text, numeric arguments and fmt's error markers, so
// a marker there is a real failure rather than argument content.
func applies(template string, args []any) bool {
	failed := false

	checked := make([]any, len(args))
	for i, arg := range args {
		if plain(arg) {
			checked[i] = arg
			continue
		}
		checked[i] = &checkedArg{v: arg, failed: &failed}
	}

	skeleton := fmt.Sprintf(template, checked...)
	if failed {
		return false
	}

	// "%%!" in the template prints a literal "%!".
	return strings.Count(skeleton, "%!") <= strings.Count(template, "%%!")
}

// plain reports whether arg is nil or a bool or number, which fmt renders
// without any text of its own.
func plain(arg any) bool {
	switch reflect.ValueOf(arg).Kind() {
	case reflect.Invalid, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// checkedArg prints nothing. It renders its value with the verb it was given
// and marks the call failed when that adds fmt error markers the value does
// not carry under %v. It is used through a pointer so %p stays valid; fmt
// handles %p and %T without calling Format.
type checkedArg struct {
	v      any
	failed *bool
}

func (a checkedArg) Format(f fmt.State, verb rune) {
	got := fmt.Sprintf(fmt.FormatString(f, verb), a.v)
	if strings.Contains(got, "(PANIC=") {
		*a.failed = true
		return
	}
	if strings.Count(got, "%!") > strings.Count(fmt.Sprint(a.v), "%!") {
		*a.failed = true
	}
}
