// Package swagval validates parsed JSON documents against Swagger 2.0 schema
// objects and reports every violation it finds, not only the first.
//
// - Validation results are values (Result[T]) with a sequencing combinator
//   (Bind) and an accumulating one (Both/All); nothing is thrown or logged.
// - A read-only Config carries the pattern matcher, the definitions table
//   used to resolve references, and the message catalog.
// - Every ValidationError carries a JSON Pointer path, a stable code and a
//   human-readable message.
//
// Design policy:
// - Keep the validator core in the root package; the schema model lives in
//   schema/, the JSON value tree in value/, document loading in loader/.
// - Place HTTP adapters under middleware/ and the CLI under cmd/swagval.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, _, err := loader.LoadFile("swagger.yaml")
//	cfg := doc.Config(loader.WithPatterns())
//	v, err := value.Parse(body)
//	if err := swagval.ValidateRef(cfg, schema.Ref("Pet"), v).Err(); err != nil {
//		errs, _ := swagval.AsErrors(err)
//		...
//	}
package swagval
