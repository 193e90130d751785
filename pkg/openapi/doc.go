// Package openapi projects a form schema onto an OpenAPI 3 description of its
// submission payload so transports can publish and enforce the record shape.
// Only unconditional rules are projected: conditional fields may legitimately
// carry stale values when their condition does not hold.
package openapi
