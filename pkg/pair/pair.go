// Package pair parses command-line values of the form "<a><sep><b>".
package pair

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number is any type ParsePair can read from a decimal string.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParsePair splits s at the first sep and parses each half as a T.
// ok is false if sep is missing or if either half is not entirely a valid T.
func ParsePair[T Number](s string, sep rune) (a, b T, ok bool) {
	left, right, found := strings.Cut(s, string(sep))
	if !found {
		return a, b, false
	}

	a, errA := Parse[T](left)
	b, errB := Parse[T](right)
	if errA != nil || errB != nil {
		var zero T
		return zero, zero, false
	}

	return a, b, true
}

// Parse reads all of s as a T, using the strconv parser for T's kind and size.
func Parse[T Number](s string) (T, error) {
	var v T

	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	default:
		if hasBasePrefix(s) {
			return v, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
		}
		// Out-of-range decimals saturate to ±Inf.
		f, err := strconv.ParseFloat(s, bits)
		if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
			return v, err
		}
		rv.SetFloat(f)
	}

	return v, nil
}

func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
