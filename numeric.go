package swagval

import (
	"math/big"
	"strconv"

	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

func (cfg Config) integer(at cursor, n value.Number) Result[Unit] {
	if n.IsInteger() {
		return OK()
	}
	return fail[Unit](cfg, at, CodeNotInteger, map[string]string{"value": string(n)})
}

// numeric runs maximum, minimum and multipleOf independently. Comparisons are
// exact whenever the literal fits a rational: the literal and the bounds are
// both read as decimals. Literals with extreme exponents compare as big.Float.
func (cfg Config) numeric(at cursor, s *schema.Schema, n value.Number) Result[Unit] {
	x, ok := operandOf(n)
	if !ok {
		return fail[Unit](cfg, at, CodeInvalidType, map[string]string{"type": string(schema.TypeNumber), "value": string(n)})
	}
	var rs []Result[Unit]
	if s.Maximum != nil {
		limit := formatFloat(*s.Maximum)
		c := x.cmp(*s.Maximum)
		switch {
		case s.ExclusiveMaximum && c >= 0:
			rs = append(rs, fail[Unit](cfg, at, CodeMaximum, map[string]string{"op": "<", "limit": limit, "value": string(n)}))
		case !s.ExclusiveMaximum && c > 0:
			rs = append(rs, fail[Unit](cfg, at, CodeMaximum, map[string]string{"op": "<=", "limit": limit, "value": string(n)}))
		}
	}
	if s.Minimum != nil {
		limit := formatFloat(*s.Minimum)
		c := x.cmp(*s.Minimum)
		switch {
		case s.ExclusiveMinimum && c <= 0:
			rs = append(rs, fail[Unit](cfg, at, CodeMinimum, map[string]string{"op": ">", "limit": limit, "value": string(n)}))
		case !s.ExclusiveMinimum && c < 0:
			rs = append(rs, fail[Unit](cfg, at, CodeMinimum, map[string]string{"op": ">=", "limit": limit, "value": string(n)}))
		}
	}
	if s.MultipleOf != nil {
		rs = append(rs, cfg.multipleOf(at, *s.MultipleOf, n, x))
	}
	return All(rs...)
}

func (cfg Config) multipleOf(at cursor, k float64, n value.Number, x operand) Result[Unit] {
	if k <= 0 {
		return fail[Unit](cfg, at, CodeInvalidSchema, map[string]string{"reason": "multipleOf must be greater than 0"})
	}
	if x.divisibleBy(k) {
		return OK()
	}
	return fail[Unit](cfg, at, CodeMultipleOf, map[string]string{"limit": formatFloat(k), "value": string(n)})
}

// operand holds a number literal as an exact rational, or as a big.Float when
// the exponent is out of big.Rat's reach.
type operand struct {
	r *big.Rat
	f *big.Float
}

func operandOf(n value.Number) (operand, bool) {
	if r, ok := n.Rat(); ok {
		return operand{r: r}, true
	}
	f, ok := n.Float()
	return operand{f: f}, ok
}

func (o operand) cmp(bound float64) int {
	if o.r != nil {
		return o.r.Cmp(exact(bound))
	}
	return o.f.Cmp(new(big.Float).SetPrec(value.FloatPrec).SetRat(exact(bound)))
}

func (o operand) divisibleBy(k float64) bool {
	if o.r != nil {
		return new(big.Rat).Quo(o.r, exact(k)).IsInt()
	}
	if o.f.IsInf() {
		return true
	}
	q := new(big.Float).SetPrec(value.FloatPrec).Quo(o.f, new(big.Float).SetPrec(value.FloatPrec).SetRat(exact(k)))
	return q.IsInt()
}

// exact reads f through its shortest decimal form, so 0.1 is one tenth rather
// than the nearest binary fraction.
func exact(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(formatFloat(f))
	if !ok {
		return new(big.Rat).SetFloat64(f)
	}
	return r
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
