// Package store provides Store, a fixed-size map from the indices [0, 99] to a
// colour, in which overlapping writes are resolved by colour priority rather
// than by the order they arrive in.
//
// A Store is not safe for concurrent use. Callers sharing one between
// goroutines must serialize calls to Store and Get themselves.
package store
