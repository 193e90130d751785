// Package validation evaluates a schema against a value set. Validate is a
// pure function: it reads its arguments, allocates a fresh Result and keeps no
// state between calls, so it can run on every edit and from any goroutine.
//
// Each field's effective rules are its base rules followed by the branch of
// its conditional rule selected by the controlling field's current value. Rules
// run in declared order and the first failure becomes the field's message.
package validation
