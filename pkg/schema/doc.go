// Package schema defines the declarative validation contract of a form: the
// ordered set of field specs, each carrying base rules and an optional
// conditional rule keyed on the value of another field. Schemas are built once
// (in code through New, or from a YAML document through a Loader) and are
// read-only afterwards; every accessor hands out copies.
//
// Rules are plain data values. The validation package interprets them, so the
// schema never holds executable predicates and every conditional branch can be
// enumerated and tested.
package schema
