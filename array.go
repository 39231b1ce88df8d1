package swagval

import (
	"strconv"

	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

func (cfg Config) array(at cursor, s *schema.Schema, arr value.Array) Result[Unit] {
	size := strconv.Itoa(len(arr))
	var rs []Result[Unit]
	if s.MaxItems != nil && len(arr) > *s.MaxItems {
		rs = append(rs, fail[Unit](cfg, at, CodeMaxItems, map[string]string{"limit": strconv.Itoa(*s.MaxItems), "size": size}))
	}
	if s.MinItems != nil && len(arr) < *s.MinItems {
		rs = append(rs, fail[Unit](cfg, at, CodeMinItems, map[string]string{"limit": strconv.Itoa(*s.MinItems), "size": size}))
	}
	rs = append(rs, cfg.items(at, s.Items, arr))
	if s.UniqueItems {
		rs = append(rs, cfg.unique(at, arr))
	}
	return All(rs...)
}

func (cfg Config) items(at cursor, items schema.Items, arr value.Array) Result[Unit] {
	switch it := items.(type) {
	case schema.ItemsList:
		rs := make([]Result[Unit], 0, len(arr))
		for i, el := range arr {
			rs = append(rs, cfg.validateRef(at.index(i), it.Schema, el))
		}
		return All(rs...)
	case schema.ItemsTuple:
		rs := make([]Result[Unit], 0, len(arr)+1)
		if len(arr) != len(it) {
			rs = append(rs, fail[Unit](cfg, at, CodeTupleSize, map[string]string{"limit": strconv.Itoa(len(it)), "size": strconv.Itoa(len(arr))}))
		}
		for i := 0; i < len(arr) && i < len(it); i++ {
			rs = append(rs, cfg.validateRef(at.index(i), it[i], arr[i]))
		}
		return All(rs...)
	}
	return fail[Unit](cfg, at, CodeInvalidSchema, map[string]string{"reason": "array item schema expected"})
}

func (cfg Config) unique(at cursor, arr value.Array) Result[Unit] {
	seen := make(map[string]struct{}, len(arr))
	for _, el := range arr {
		k := value.Key(el)
		if _, dup := seen[k]; dup {
			return fail[Unit](cfg, at, CodeUniqueItems, nil)
		}
		seen[k] = struct{}{}
	}
	return OK()
}
