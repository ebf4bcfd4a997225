package parambuilder

import (
	"fmt"
	"github.com/shopspring/decimal"
	"reflect"
	"strconv"
)

// Value is a parameter value that can produce its text representation
//
// Text should return an error if the value has no text representation (see Null)
type Value interface {
	Text() (string, error)
}

// String is a Value of plain text
type String string

func (v String) Text() (string, error) {
	return string(v), nil
}

// Int is a Value of a signed integer
type Int int64

func (v Int) Text() (string, error) {
	return strconv.FormatInt(int64(v), 10), nil
}

// Uint is a Value of an unsigned integer
type Uint uint64

func (v Uint) Text() (string, error) {
	return strconv.FormatUint(uint64(v), 10), nil
}

// Float is a Value of a floating point number
//
// the text is the shortest representation that round-trips (e.g. 1.5, 2, 1e+21)
type Float float64

func (v Float) Text() (string, error) {
	return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
}

// Bool is a Value of true or false
type Bool bool

func (v Bool) Text() (string, error) {
	return strconv.FormatBool(bool(v)), nil
}

// Decimal is a Value of an arbitrary precision decimal
type Decimal decimal.Decimal

func (v Decimal) Text() (string, error) {
	return decimal.Decimal(v).String(), nil
}

// Stringer is a Value that uses the String method of the wrapped value
type Stringer struct {
	fmt.Stringer
}

func (v Stringer) Text() (string, error) {
	if v.Stringer == nil {
		return "", wrapError(ErrorConversion, "", ErrNullValue, "")
	}
	return v.String(), nil
}

// Null is a Value that has no text representation
//
// serializing a param with a Null value fails with an ErrorConversion error
type Null struct{}

func (Null) Text() (string, error) {
	return "", wrapError(ErrorConversion, "", ErrNullValue, "")
}

// ValueOf adapts any value to a Value
//
// the following are treated specially:
//   - nil becomes Null
//   - a Value is returned as is
//   - strings, ints, uints, floats & bools become String, Int, Uint, Float & Bool
//   - decimal.Decimal becomes Decimal
//   - a fmt.Stringer becomes Stringer
//
// anything else is formatted using "%v" (typed nils, including nil Values, become Null)
func ValueOf(v any) Value {
	if v != nil && isNilPointer(v) {
		return Null{}
	}
	switch vt := v.(type) {
	case nil:
		return Null{}
	case Value:
		return vt
	case string:
		return String(vt)
	case int:
		return Int(vt)
	case int8:
		return Int(vt)
	case int16:
		return Int(vt)
	case int32:
		return Int(vt)
	case int64:
		return Int(vt)
	case uint:
		return Uint(vt)
	case uint8:
		return Uint(vt)
	case uint16:
		return Uint(vt)
	case uint32:
		return Uint(vt)
	case uint64:
		return Uint(vt)
	case float32:
		return String(strconv.FormatFloat(float64(vt), 'g', -1, 32))
	case float64:
		return Float(vt)
	case bool:
		return Bool(vt)
	case decimal.Decimal:
		return Decimal(vt)
	case []byte:
		return String(vt)
	case fmt.Stringer:
		return Stringer{vt}
	}
	return String(fmt.Sprintf("%v", v))
}

func textOf(v Value) (string, error) {
	if v == nil || isNilPointer(v) {
		return Null{}.Text()
	}
	return v.Text()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
