package swagval

import (
	"strconv"

	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

// object validates an object node. A declared discriminator replaces the
// structural checks: the whole object is validated against the definition
// named by the discriminator field name itself.
func (cfg Config) object(at cursor, s *schema.Schema, obj value.Object) Result[Unit] {
	if s.Discriminator != "" {
		return cfg.validateRef(at, schema.Ref(s.Discriminator), obj)
	}
	size := strconv.Itoa(len(obj))
	var rs []Result[Unit]
	if s.MaxProperties != nil && len(obj) > *s.MaxProperties {
		rs = append(rs, fail[Unit](cfg, at, CodeMaxProperties, map[string]string{"limit": strconv.Itoa(*s.MaxProperties), "size": size}))
	}
	if s.MinProperties != nil && len(obj) < *s.MinProperties {
		rs = append(rs, fail[Unit](cfg, at, CodeMinProperties, map[string]string{"limit": strconv.Itoa(*s.MinProperties), "size": size}))
	}
	for _, name := range s.Required {
		if !obj.Has(name) {
			rs = append(rs, fail[Unit](cfg, at.field(name), CodeRequired, map[string]string{"name": name}))
		}
	}
	for _, m := range obj {
		if p, ok := s.Properties[m.Key]; ok {
			rs = append(rs, cfg.validateRef(at.field(m.Key), p, m.Value))
			continue
		}
		if s.AdditionalProperties != nil {
			rs = append(rs, cfg.validateRef(at.field(m.Key), s.AdditionalProperties, m.Value))
		}
		// TODO: surface undeclared keys as warnings once Result carries a warning channel.
	}
	return All(rs...)
}
