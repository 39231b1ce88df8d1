package swagval

import (
	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

func (cfg Config) enum(at cursor, s *schema.Schema, v value.Value) Result[Unit] {
	if s.Enum == nil {
		return OK()
	}
	for _, allowed := range s.Enum {
		if value.Equal(allowed, v) {
			return OK()
		}
	}
	return fail[Unit](cfg, at, CodeInvalidEnum, map[string]string{"list": value.Render(value.Array(s.Enum)), "value": value.Render(v)})
}
