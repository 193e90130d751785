// Package form implements the caller side of the validation contract: a
// Session owns the current value set, merges one edit at a time, keeps the
// latest validation result and only hands values to a Submitter when the form
// is valid.
package form
