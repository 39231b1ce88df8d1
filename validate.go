package swagval

import (
	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

// Validate checks v against s. Type conformance and enum membership are both
// evaluated and their violations reported together.
func Validate(cfg Config, s *schema.Schema, v value.Value) Result[Unit] {
	return cfg.validate(cursor{path: Root()}, s, v)
}

// ValidateRef checks v against an inline schema or a reference into
// cfg.Definitions.
func ValidateRef(cfg Config, r schema.Referenced, v value.Value) Result[Unit] {
	return cfg.validateRef(cursor{path: Root()}, r, v)
}

// Resolve looks ref up in cfg.Definitions.
func Resolve(cfg Config, ref schema.Reference) Result[*schema.Schema] {
	return cfg.resolve(cursor{path: Root()}, ref)
}

// cursor locates the value under validation. refs lists the reference names
// already resolved for this same value; it is cleared on descent.
type cursor struct {
	path Path
	refs []string
}

func (c cursor) field(name string) cursor { return cursor{path: c.path.Field(name)} }
func (c cursor) index(i int) cursor       { return cursor{path: c.path.Index(i)} }

func (c cursor) through(name string) cursor {
	return cursor{path: c.path, refs: append(append([]string(nil), c.refs...), name)}
}

func (c cursor) visited(name string) bool {
	for _, r := range c.refs {
		if r == name {
			return true
		}
	}
	return false
}

func fail[T any](cfg Config, at cursor, code string, data map[string]string) Result[T] {
	return Failed[T](ValidationError{Path: at.path.Pointer(), Code: code, Message: cfg.message(code, data)})
}

func (cfg Config) resolve(at cursor, ref schema.Reference) Result[*schema.Schema] {
	if at.visited(ref.Name) {
		return fail[*schema.Schema](cfg, at, CodeCyclicReference, map[string]string{"name": ref.Name})
	}
	s, ok := cfg.Definitions[ref.Name]
	if !ok || s == nil {
		return fail[*schema.Schema](cfg, at, CodeUnknownSchema, map[string]string{"name": ref.Name})
	}
	return Pass(s)
}

func (cfg Config) validateRef(at cursor, r schema.Referenced, v value.Value) Result[Unit] {
	switch t := r.(type) {
	case schema.Reference:
		return Bind(cfg.resolve(at, t), func(s *schema.Schema) Result[Unit] {
			return cfg.validate(at.through(t.Name), s, v)
		})
	case *schema.Schema:
		return cfg.validate(at, t, v)
	}
	// no schema: unconstrained
	return OK()
}

func (cfg Config) validate(at cursor, s *schema.Schema, v value.Value) Result[Unit] {
	if s == nil {
		return OK()
	}
	if v == nil {
		v = value.Null{}
	}
	return Both(cfg.conform(at, s, v), cfg.enum(at, s, v))
}

// conform matches the declared type against the value's kind; the type's own
// constraints only run once the kinds agree.
func (cfg Config) conform(at cursor, s *schema.Schema, v value.Value) Result[Unit] {
	mismatch := func() Result[Unit] {
		return fail[Unit](cfg, at, CodeInvalidType, map[string]string{"type": string(s.Type), "value": value.Render(v)})
	}
	switch s.Type {
	case "":
		return OK()
	case schema.TypeNull:
		if _, ok := v.(value.Null); ok {
			return OK()
		}
		return mismatch()
	case schema.TypeBoolean:
		if _, ok := v.(value.Bool); ok {
			return OK()
		}
		return mismatch()
	case schema.TypeInteger:
		n, ok := v.(value.Number)
		if !ok {
			return mismatch()
		}
		return Bind(cfg.integer(at, n), func(Unit) Result[Unit] { return cfg.numeric(at, s, n) })
	case schema.TypeNumber:
		n, ok := v.(value.Number)
		if !ok {
			return mismatch()
		}
		return cfg.numeric(at, s, n)
	case schema.TypeString:
		str, ok := v.(value.String)
		if !ok {
			return mismatch()
		}
		return cfg.str(at, s, str)
	case schema.TypeArray:
		arr, ok := v.(value.Array)
		if !ok {
			return mismatch()
		}
		return cfg.array(at, s, arr)
	case schema.TypeObject:
		obj, ok := v.(value.Object)
		if !ok {
			return mismatch()
		}
		return cfg.object(at, s, obj)
	}
	return fail[Unit](cfg, at, CodeInvalidSchema, map[string]string{"reason": "unsupported type " + string(s.Type)})
}
