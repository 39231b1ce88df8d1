package swagval

import (
	"strconv"
	"unicode/utf8"

	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

// str enforces length bounds (in code points) and the pattern.
func (cfg Config) str(at cursor, s *schema.Schema, v value.String) Result[Unit] {
	n := utf8.RuneCountInString(string(v))
	var rs []Result[Unit]
	if s.MaxLength != nil && n > *s.MaxLength {
		rs = append(rs, fail[Unit](cfg, at, CodeMaxLength, map[string]string{"limit": strconv.Itoa(*s.MaxLength), "size": strconv.Itoa(n)}))
	}
	if s.MinLength != nil && n < *s.MinLength {
		rs = append(rs, fail[Unit](cfg, at, CodeMinLength, map[string]string{"limit": strconv.Itoa(*s.MinLength), "size": strconv.Itoa(n)}))
	}
	if s.Pattern != "" && !cfg.match(s.Pattern, string(v)) {
		rs = append(rs, fail[Unit](cfg, at, CodePattern, map[string]string{"pattern": s.Pattern}))
	}
	return All(rs...)
}
