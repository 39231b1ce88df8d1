package swagval_test

import (
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/swagval"
	"github.com/reoring/swagval/i18n"
	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

func mustSchema(t *testing.T, js string) *schema.Schema {
	t.Helper()
	var s schema.Schema
	if err := json.Unmarshal([]byte(js), &s); err != nil {
		t.Fatalf("schema %s: %v", js, err)
	}
	return &s
}

func mustValue(t *testing.T, js string) value.Value {
	t.Helper()
	v, err := value.Parse([]byte(js))
	if err != nil {
		t.Fatalf("value %s: %v", js, err)
	}
	return v
}

func mustDefs(t *testing.T, js string) schema.Definitions {
	t.Helper()
	defs := schema.Definitions{}
	if err := json.Unmarshal([]byte(js), &defs); err != nil {
		t.Fatalf("definitions %s: %v", js, err)
	}
	return defs
}

func TestValidate_Table(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		value  string
		want   []string
	}{
		{"null ok", `{"type":"null"}`, `null`, nil},
		{"boolean ok", `{"type":"boolean"}`, `false`, nil},
		{"boolean mismatch", `{"type":"boolean"}`, `"true"`, []string{`expected JSON value of type boolean: "true"`}},
		{"untyped accepts anything", `{}`, `{"x":[1]}`, nil},
		{"kind mismatch skips sub-constraints", `{"type":"string","minLength":10,"pattern":"^x"}`, `5`, []string{"expected JSON value of type string: 5"}},
		{"integer rejects fraction only", `{"type":"integer","maximum":1,"multipleOf":2}`, `1.5`, []string{"not an integer: 1.5"}},
		{"integer accepts zero fraction", `{"type":"integer"}`, `10.0`, nil},
		{"integer then range", `{"type":"integer","maximum":1}`, `2`, []string{"exceeds maximum (should be <=1)"}},
		{"exclusive maximum rejects bound", `{"type":"number","maximum":10,"exclusiveMaximum":true}`, `10`, []string{"exceeds maximum (should be <10)"}},
		{"exclusive maximum accepts below", `{"type":"number","maximum":10,"exclusiveMaximum":true}`, `9.9999`, nil},
		{"inclusive minimum accepts bound", `{"type":"number","minimum":0}`, `0`, nil},
		{"inclusive minimum rejects below", `{"type":"number","minimum":0}`, `-0.0001`, []string{"below minimum (should be >=0)"}},
		{"exclusive minimum rejects bound", `{"type":"number","minimum":0,"exclusiveMinimum":true}`, `0`, []string{"below minimum (should be >0)"}},
		{"multipleOf decimal passes", `{"type":"number","multipleOf":0.1}`, `9`, nil},
		{"multipleOf decimal fails", `{"type":"number","multipleOf":0.1}`, `9.05`, []string{"expected a multiple of 0.1 but got 9.05"}},
		{"multipleOf zero is a schema error", `{"type":"number","multipleOf":0}`, `1`, []string{"invalid schema: multipleOf must be greater than 0"}},
		{"two numeric violations in order", `{"type":"number","maximum":10,"multipleOf":3}`, `11`, []string{"exceeds maximum (should be <=10)", "expected a multiple of 3 but got 11"}},
		{"string too short", `{"type":"string","minLength":2,"maxLength":4}`, `"a"`, []string{"string is too short (should be at least 2 characters)"}},
		{"string too long", `{"type":"string","minLength":2,"maxLength":4}`, `"abcde"`, []string{"string is too long (should be at most 4 characters)"}},
		{"string lower bound", `{"type":"string","minLength":2,"maxLength":4}`, `"ab"`, nil},
		{"string upper bound", `{"type":"string","minLength":2,"maxLength":4}`, `"abcd"`, nil},
		{"string length counts code points", `{"type":"string","minLength":2,"maxLength":2}`, `"日本"`, nil},
		{"pattern unenforced by default", `{"type":"string","pattern":"^[0-9]+$"}`, `"abc"`, nil},
		{"array without items", `{"type":"array"}`, `[]`, []string{"invalid schema: array item schema expected"}},
		{"array bounds", `{"type":"array","items":{},"minItems":2}`, `[1]`, []string{"array size is invalid (should be >=2)"}},
		{"array max bound", `{"type":"array","items":{},"maxItems":1}`, `[1,2]`, []string{"array size is invalid (should be <=1)"}},
		{"list items accumulate", `{"type":"array","items":{"type":"integer"}}`, `["a",1,"b"]`, []string{`expected JSON value of type integer: "a"`, `expected JSON value of type integer: "b"`}},
		{"tuple size mismatch", `{"type":"array","items":[{"type":"integer"},{"type":"string"}]}`, `[1,"a",true]`, []string{"array size is invalid (should be exactly 2)"}},
		{"tuple size and element", `{"type":"array","items":[{"type":"integer"},{"type":"string"}]}`, `["x"]`, []string{"array size is invalid (should be exactly 2)", `expected JSON value of type integer: "x"`}},
		{"tuple ok", `{"type":"array","items":[{"type":"integer"},{"type":"string"}]}`, `[1,"a"]`, nil},
		{"unique rejects duplicates", `{"type":"array","items":{},"uniqueItems":true}`, `[1,1]`, []string{"array is expected to contain unique items, but it does not"}},
		{"unique accepts distinct", `{"type":"array","items":{},"uniqueItems":true}`, `[1,2]`, nil},
		{"unique compares numbers by value", `{"type":"array","items":{},"uniqueItems":true}`, `[1,1.0]`, []string{"array is expected to contain unique items, but it does not"}},
		{"unique compares objects structurally", `{"type":"array","items":{},"uniqueItems":true}`, `[{"a":1,"b":2},{"b":2,"a":1}]`, []string{"array is expected to contain unique items, but it does not"}},
		{"required names missing only", `{"type":"object","required":["a","b"]}`, `{"a":1}`, []string{"property b is required, but not found in object"}},
		{"object bounds", `{"type":"object","maxProperties":1}`, `{"a":1,"b":2}`, []string{"object size is invalid (should be <=1)"}},
		{"object min bound", `{"type":"object","minProperties":1}`, `{}`, []string{"object size is invalid (should be >=1)"}},
		{"properties and additional", `{"type":"object","properties":{"a":{"type":"integer"}},"additionalProperties":{"type":"string"}}`, `{"a":"x","b":1,"c":"ok"}`, []string{`expected JSON value of type integer: "x"`, "expected JSON value of type string: 1"}},
		{"undeclared keys pass", `{"type":"object","properties":{"a":{"type":"integer"}}}`, `{"a":1,"zzz":[true]}`, nil},
		{"type and enum both reported", `{"type":"string","enum":["a","b"]}`, `3`, []string{"expected JSON value of type string: 3", `expected one of ["a","b"] but got 3`}},
		{"enum structural match", `{"enum":[{"k":[1,2]}]}`, `{"k":[1,2.0]}`, nil},
		{"empty enum admits nothing", `{"enum":[]}`, `null`, []string{"expected one of [] but got null"}},
		{"unsupported type", `{"type":"file"}`, `"x"`, []string{"invalid schema: unsupported type file"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := swagval.Validate(swagval.DefaultConfig(), mustSchema(t, tc.schema), mustValue(t, tc.value))
			if len(tc.want) == 0 {
				if !r.Passed() {
					t.Fatalf("expected pass, got %q", r.Errors().Messages())
				}
				return
			}
			if r.Passed() {
				t.Fatalf("expected failure %q, got pass", tc.want)
			}
			sameMessages(t, r.Errors().Messages(), tc.want)
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	s := mustSchema(t, `{
		"type":"object",
		"required":["id","name"],
		"properties":{"id":{"type":"integer","minimum":1},"tags":{"type":"array","items":{"type":"string"},"uniqueItems":true}},
		"additionalProperties":{"type":"boolean"}
	}`)
	v := mustValue(t, `{"z":1,"id":0,"tags":["a","a",3],"y":"no"}`)
	first := swagval.Validate(swagval.DefaultConfig(), s, v)
	second := swagval.Validate(swagval.DefaultConfig(), s, v)
	if first.Passed() {
		t.Fatalf("expected failures")
	}
	if !reflect.DeepEqual(first.Errors(), second.Errors()) {
		t.Fatalf("results differ:\n%v\n%v", first.Errors(), second.Errors())
	}
	wantPaths := []string{"/name", "/z", "/id", "/tags/2", "/tags", "/y"}
	errs := first.Errors()
	if len(errs) != len(wantPaths) {
		t.Fatalf("expected %d errors, got %v", len(wantPaths), errs)
	}
	for i, p := range wantPaths {
		if errs[i].Path != p {
			t.Fatalf("error %d: path %q, want %q (%v)", i, errs[i].Path, p, errs)
		}
	}
	if errs[0].Code != swagval.CodeRequired || errs[4].Code != swagval.CodeUniqueItems {
		t.Fatalf("unexpected codes: %v", errs)
	}
}

func TestValidate_Patterns(t *testing.T) {
	cfg := swagval.DefaultConfig()
	cfg.Match = swagval.RegexpMatcher()
	s := mustSchema(t, `{"type":"string","pattern":"^[a-z]+$"}`)
	if r := swagval.Validate(cfg, s, value.String("abc")); !r.Passed() {
		t.Fatalf("expected pass, got %v", r.Errors())
	}
	r := swagval.Validate(cfg, s, value.String("ABC"))
	sameMessages(t, r.Errors().Messages(), []string{"string does not match pattern ^[a-z]+$"})
	// cached compile path
	if r := swagval.Validate(cfg, s, value.String("ABC")); r.Passed() {
		t.Fatalf("expected cached pattern to keep failing")
	}
	bad := mustSchema(t, `{"type":"string","pattern":"("}`)
	if r := swagval.Validate(cfg, bad, value.String("(")); r.Passed() {
		t.Fatalf("invalid pattern should never match")
	}
}

func TestValidate_NilMatcherAndNilValue(t *testing.T) {
	s := mustSchema(t, `{"type":"string","pattern":"^x$"}`)
	if r := swagval.Validate(swagval.Config{}, s, value.String("y")); !r.Passed() {
		t.Fatalf("nil matcher should accept, got %v", r.Errors())
	}
	if r := swagval.Validate(swagval.Config{}, mustSchema(t, `{"type":"null"}`), nil); !r.Passed() {
		t.Fatalf("nil value should be treated as null, got %v", r.Errors())
	}
}

func TestResolve(t *testing.T) {
	r := swagval.Resolve(swagval.DefaultConfig(), schema.Ref("Pet"))
	if r.Passed() {
		t.Fatalf("expected unknown schema")
	}
	msg := r.Errors()[0].Message
	if !strings.Contains(msg, "unknown schema") || !strings.Contains(msg, "Pet") {
		t.Fatalf("unexpected message %q", msg)
	}
	if r.Errors()[0].Code != swagval.CodeUnknownSchema {
		t.Fatalf("unexpected code %q", r.Errors()[0].Code)
	}

	pet := mustSchema(t, `{"type":"object"}`)
	cfg := swagval.Config{Definitions: schema.Definitions{"Pet": pet}}
	got := swagval.Resolve(cfg, schema.Ref("Pet"))
	if !got.Passed() || got.Value() != pet {
		t.Fatalf("expected resolved schema, got %v", got.Errors())
	}
}

func TestValidateRef_EquivalentToInline(t *testing.T) {
	pet := `{"type":"object","required":["name"],"properties":{"name":{"type":"string","minLength":1},"age":{"type":"integer","minimum":0}}}`
	cfg := swagval.DefaultConfig()
	cfg.Definitions = mustDefs(t, `{"Pet":`+pet+`}`)
	for _, doc := range []string{`{"name":"rex","age":3}`, `{"name":"","age":-1}`, `{"age":1.5}`, `[]`} {
		v := mustValue(t, doc)
		byRef := swagval.ValidateRef(cfg, schema.Ref("Pet"), v)
		inline := swagval.ValidateRef(cfg, mustSchema(t, pet), v)
		if !reflect.DeepEqual(byRef.Errors(), inline.Errors()) {
			t.Fatalf("%s: ref %v != inline %v", doc, byRef.Errors(), inline.Errors())
		}
	}

	r := swagval.ValidateRef(swagval.DefaultConfig(), schema.Ref("Pet"), mustValue(t, `{}`))
	if r.Passed() || !strings.Contains(r.Errors()[0].Message, "unknown schema Pet") {
		t.Fatalf("expected unknown schema, got %v", r.Errors())
	}
	if !swagval.ValidateRef(cfg, nil, mustValue(t, `1`)).Passed() {
		t.Fatalf("nil schema should be unconstrained")
	}
}

func TestValidate_ReferencedProperties(t *testing.T) {
	cfg := swagval.DefaultConfig()
	cfg.Definitions = mustDefs(t, `{
		"Tag": {"type":"string","maxLength":3},
		"Post": {"type":"object","properties":{"tags":{"type":"array","items":{"$ref":"#/definitions/Tag"}},"author":{"$ref":"#/definitions/User"}}}
	}`)
	r := swagval.ValidateRef(cfg, schema.Ref("Post"), mustValue(t, `{"tags":["go","rust!"],"author":{}}`))
	errs := r.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Path != "/tags/1" || errs[0].Code != swagval.CodeMaxLength {
		t.Fatalf("unexpected first error %+v", errs[0])
	}
	if errs[1].Path != "/author" || errs[1].Message != "unknown schema User" {
		t.Fatalf("unexpected second error %+v", errs[1])
	}
}

// The discriminator routes by its own field name: a schema declaring
// discriminator "petType" is validated against the definition named
// "petType", whatever the document stores in that field.
func TestValidate_DiscriminatorRoutesByFieldName(t *testing.T) {
	cfg := swagval.DefaultConfig()
	cfg.Definitions = mustDefs(t, `{
		"Pet": {"type":"object","discriminator":"petType","required":["petType"],"maxProperties":0},
		"petType": {"type":"object","required":["name"]},
		"Cat": {"type":"object","required":["meow"]}
	}`)
	r := swagval.ValidateRef(cfg, schema.Ref("Pet"), mustValue(t, `{"petType":"Cat"}`))
	sameMessages(t, r.Errors().Messages(), []string{"property name is required, but not found in object"})

	r = swagval.ValidateRef(cfg, schema.Ref("Pet"), mustValue(t, `{"petType":"Cat","name":"tom"}`))
	if !r.Passed() {
		t.Fatalf("expected pass via petType definition, got %v", r.Errors())
	}

	delete(cfg.Definitions, "petType")
	r = swagval.ValidateRef(cfg, schema.Ref("Pet"), mustValue(t, `{"petType":"Cat","meow":true}`))
	sameMessages(t, r.Errors().Messages(), []string{"unknown schema petType"})
}

func TestValidate_CyclicReferenceGuard(t *testing.T) {
	cfg := swagval.DefaultConfig()
	cfg.Definitions = mustDefs(t, `{
		"Loop": {"type":"object","discriminator":"Loop"},
		"Node": {"type":"object","required":["name"],"properties":{"name":{"type":"string"},"children":{"type":"array","items":{"$ref":"#/definitions/Node"}}}}
	}`)
	r := swagval.ValidateRef(cfg, schema.Ref("Loop"), mustValue(t, `{}`))
	sameMessages(t, r.Errors().Messages(), []string{"cyclic reference Loop"})

	tree := mustValue(t, `{"name":"root","children":[{"name":"a","children":[{"children":[]}]},{"name":"b"}]}`)
	r = swagval.ValidateRef(cfg, schema.Ref("Node"), tree)
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Path != "/children/0/children/0/name" || errs[0].Code != swagval.CodeRequired {
		t.Fatalf("expected one deep required error, got %v", errs)
	}
}

func TestValidate_Translator(t *testing.T) {
	cfg := swagval.DefaultConfig()
	cfg.Translator = i18n.Japanese()
	r := swagval.Validate(cfg, mustSchema(t, `{"type":"object","required":["id"]}`), mustValue(t, `{}`))
	if r.Passed() {
		t.Fatalf("expected failure")
	}
	if msg := r.Errors()[0].Message; msg == "property id is required, but not found in object" || !strings.Contains(msg, "id") {
		t.Fatalf("expected japanese message naming id, got %q", msg)
	}
}

func TestValidate_ExtremeExponents(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		value  value.Number
		want   []string
	}{
		{"huge number is still a number", `{"type":"number","maximum":10}`, "1e9999999", []string{"exceeds maximum (should be <=10)"}},
		{"huge number is integral", `{"type":"integer","maximum":10}`, "1e100000000", []string{"exceeds maximum (should be <=10)"}},
		{"huge negative below minimum", `{"type":"number","minimum":0}`, "-1e9999999", []string{"below minimum (should be >=0)"}},
		{"tiny positive above exclusive zero", `{"type":"number","minimum":0,"exclusiveMinimum":true}`, "1e-9999999", nil},
		{"tiny fraction is not integral", `{"type":"integer"}`, "1.5e-9999999", []string{"not an integer: 1.5e-9999999"}},
		{"huge number is a multiple of one half", `{"type":"number","multipleOf":0.5}`, "1e9999999", nil},
		{"huge integer above the float range", `{"type":"integer","maximum":1e308}`, "1e9999999", []string{"exceeds maximum (should be <=1e+308)"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := swagval.Validate(swagval.DefaultConfig(), mustSchema(t, tc.schema), tc.value)
			sameMessages(t, r.Errors().Messages(), tc.want)
		})
	}
}

func TestValidate_DefaultConfigIgnoresGlobalLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	s := mustSchema(t, `{"type":"string"}`)
	for _, cfg := range []swagval.Config{swagval.DefaultConfig(), {}} {
		r := swagval.Validate(cfg, s, value.NumberFromInt(1))
		sameMessages(t, r.Errors().Messages(), []string{"expected JSON value of type string: 1"})
	}
}

func TestValidate_RootAndEmptyKeyPaths(t *testing.T) {
	s := mustSchema(t, `{"type":"object","minProperties":2,"properties":{"":{"type":"string"}}}`)
	errs := swagval.Validate(swagval.DefaultConfig(), s, mustValue(t, `{"":1}`)).Errors()
	if len(errs) != 2 || errs[0].Path != "" || errs[1].Path != "/" {
		t.Fatalf("expected root then empty-key paths, got %#v", errs)
	}
	if got := errs.Error(); !strings.HasPrefix(got, "(root): object size is invalid") || !strings.Contains(got, "; /: expected JSON value of type string: 1") {
		t.Fatalf("unexpected summary %q", got)
	}
}
