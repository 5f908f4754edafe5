// Package literal holds the pure trial parsers the lexer uses to tell GUIDs,
// dates, times and durations apart, and builds Go values from literal tokens.
//
// Every Parse* function is side-effect free: it either accepts the whole
// input and returns the value, or reports false. Callers decide how much of
// the source to offer and roll back nothing on failure.
package literal
