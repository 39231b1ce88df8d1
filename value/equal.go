package value

import (
	"sort"
	"strconv"
	"strings"
)

// Equal reports structural equality. Numbers compare by exact value, so 1 and
// 1.0 are equal; object member order is irrelevant.
func Equal(a, b Value) bool {
	a, b = orNull(a), orNull(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case String:
		return x == b.(String)
	case Number:
		return numbersEqual(x, b.(Number))
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y := b.(Object)
		if len(x) != len(y) {
			return false
		}
		for _, m := range x {
			other, ok := y.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

// Key returns a canonical encoding of v: two values are Equal exactly when
// their keys are identical.
func Key(v Value) string {
	var b strings.Builder
	writeKey(&b, v)
	return b.String()
}

func writeKey(b *strings.Builder, v Value) {
	switch x := orNull(v).(type) {
	case Null:
		b.WriteString("n")
	case Bool:
		if x {
			b.WriteString("t")
		} else {
			b.WriteString("f")
		}
	case Number:
		b.WriteByte('#')
		if r, ok := x.Rat(); ok {
			b.WriteString(r.RatString())
		} else if f, ok := x.Float(); ok {
			b.WriteString(f.Text('p', 0))
		} else {
			b.WriteString(string(x))
		}
	case String:
		b.WriteString(strconv.Quote(string(x)))
	case Array:
		b.WriteByte('[')
		for i, el := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, el)
		}
		b.WriteByte(']')
	case Object:
		members := append(Object(nil), x...)
		sort.Slice(members, func(i, j int) bool { return members[i].Key < members[j].Key })
		b.WriteByte('{')
		for i, m := range members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(m.Key))
			b.WriteByte(':')
			writeKey(b, m.Value)
		}
		b.WriteByte('}')
	}
}

func numbersEqual(a, b Number) bool {
	if a == b {
		return true
	}
	if ra, ok := a.Rat(); ok {
		if rb, ok := b.Rat(); ok {
			return ra.Cmp(rb) == 0
		}
	}
	fa, ok1 := a.Float()
	fb, ok2 := b.Float()
	return ok1 && ok2 && fa.Cmp(fb) == 0
}

func orNull(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}
