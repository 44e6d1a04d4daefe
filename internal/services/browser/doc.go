// Package browser drives the search, nearby, and detail flows against the
// data source, feeding results to the state store and the navigator.
package browser
