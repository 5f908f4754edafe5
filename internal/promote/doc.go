// Package promote resolves operator operands and function arguments against
// the built-in signature tables. It decides which overload applies, which
// implicit conversions happen and what precision and scale the promoted
// operands end up with.
package promote
