package schema

import "sort"

// References lists every Reference reachable from r without resolving any of
// them, in a deterministic order. A discriminator counts as a reference to the
// schema named by the discriminator itself.
func References(r Referenced) []Reference {
	var out []Reference
	collectRefs(r, &out)
	return out
}

func collectRefs(r Referenced, out *[]Reference) {
	switch t := r.(type) {
	case Reference:
		*out = append(*out, t)
	case *Schema:
		if t == nil {
			return
		}
		if t.Discriminator != "" {
			*out = append(*out, Reference{Name: t.Discriminator})
		}
		switch it := t.Items.(type) {
		case ItemsList:
			collectRefs(it.Schema, out)
		case ItemsTuple:
			for _, el := range it {
				collectRefs(el, out)
			}
		}
		for _, name := range sortedKeys(t.Properties) {
			collectRefs(t.Properties[name], out)
		}
		collectRefs(t.AdditionalProperties, out)
	}
}

func sortedKeys(m map[string]Referenced) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
