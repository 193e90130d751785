// Package render turns validated value sets into submission payloads and
// serialises them (json, x-www-form-urlencoded, yaml, a plain-text summary or
// an HTML summary). It also carries the presentation hints renderers use to
// label fields and the helpers that order validation messages for display.
package render
