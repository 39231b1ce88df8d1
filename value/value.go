package value

import (
	"bytes"
	"errors"
	"math/big"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind enumerates the runtime kinds of a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of a parsed JSON document. The set of implementations is
// closed: Null, Bool, Number, String, Array and Object.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept as its decimal literal so that range and
// multipleOf checks can be evaluated exactly.
type Number string

// String is a JSON string.
type String string

// Array is a JSON array.
type Array []Value

// Object is a JSON object. Members keep document order; keys are unique.
type Object []Member

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// NumberFromFloat returns the shortest decimal literal that round-trips f.
func NumberFromFloat(f float64) Number {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// NumberFromInt returns the literal for i.
func NumberFromInt(i int64) Number { return Number(strconv.FormatInt(i, 10)) }

// Rat returns the exact rational value of the literal.
func (n Number) Rat() (*big.Rat, bool) {
	return new(big.Rat).SetString(string(n))
}

// FloatPrec is the mantissa precision of Number.Float.
const FloatPrec = 256

// Float returns the literal as a big.Float. Unlike Rat it accepts any
// exponent; magnitudes beyond the float range become ±Inf.
func (n Number) Float() (*big.Float, bool) {
	if f, _, err := big.ParseFloat(string(n), 10, FloatPrec, big.ToNearestEven); err == nil {
		return f, true
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	return new(big.Float).SetPrec(FloatPrec).SetFloat64(f), true
}

// Float64 returns the nearest float64; ok is false for malformed literals.
func (n Number) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(string(n), 64)
	return f, err == nil
}

// IsInteger reports whether the number has no fractional part.
func (n Number) IsInteger() bool {
	if r, ok := n.Rat(); ok {
		return r.IsInt()
	}
	f, ok := n.Float()
	return ok && (f.IsInf() || f.IsInt())
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns member keys in document order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

func (o Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := marshalText(m.Key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v, err := marshal(m.Value)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (a Array) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, el := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		v, err := marshal(el)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

func marshal(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return marshalText(v)
}

// marshalText encodes without HTML escaping so rendered values read like the input.
func marshalText(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// Render returns the compact JSON text of v, as used in validation messages.
func Render(v Value) string {
	b, err := marshal(v)
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}
