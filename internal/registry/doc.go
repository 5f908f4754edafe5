// Package registry keeps the per-model extensions of the query language:
// custom literal prefixes and custom function overloads.
//
// Each registry holds one immutable map behind an atomic pointer. Writers
// build a new map from the snapshot they observed and install it with a
// compare-and-swap, retrying when another writer got there first. Readers
// never block and always see a complete map.
//
// Registries are found through the model they extend. The side table is
// keyed by weak pointers, so a registry lives exactly as long as its model
// is reachable.
package registry
