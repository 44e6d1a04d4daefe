// Package source implements the domain.Source contract twice: a live JSON
// over HTTP client for the services backend, and a fixture serving canned
// sample data behind a simulated network delay.
//
// Which one the app uses is a static configuration choice; nothing above
// this package can tell them apart.
package source
