package ir

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/teranos/schemagen/errors"
)

// Value is a sealed interface over metadata tag argument values.
// Only NullValue, StringValue, IntValue, FloatValue, BoolValue and ListValue
// implement it.
type Value interface {
	value()
	String() string
}

// NullValue is an explicit null argument.
type NullValue struct{}

// StringValue is a string argument.
type StringValue string

// IntValue is an integer argument.
type IntValue int64

// FloatValue is a non-integral numeric argument.
type FloatValue float64

// BoolValue is a boolean argument.
type BoolValue bool

// ListValue is a nested list of arguments.
type ListValue []Value

func (NullValue) value()   {}
func (StringValue) value() {}
func (IntValue) value()    {}
func (FloatValue) value()  {}
func (BoolValue) value()   {}
func (ListValue) value()   {}

func (NullValue) String() string     { return "null" }
func (v StringValue) String() string { return strconv.Quote(string(v)) }
func (v IntValue) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }

func (v ListValue) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ValueOf converts a decoded token argument into a Value. Numbers that carry
// no fractional part become IntValue. Maps are not part of the argument
// vocabulary and are rejected.
func ValueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NullValue{}, nil
	case Value:
		return v, nil
	case string:
		return StringValue(v), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(v), nil
	case int64:
		return IntValue(v), nil
	case int32:
		return IntValue(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return FloatValue(float64(v)), nil
		}
		return IntValue(v), nil
	case float32:
		return floatOrInt(float64(v)), nil
	case float64:
		return floatOrInt(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", v.String())
		}
		return FloatValue(f), nil
	case []any:
		list := make(ListValue, len(v))
		for i, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			list[i] = ev
		}
		return list, nil
	}
	return nil, errors.Newf("unsupported argument type %T", raw)
}

func floatOrInt(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1<<53 {
		return IntValue(int64(f))
	}
	return FloatValue(f)
}
