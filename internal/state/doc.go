// Package state is the application's single mutable holder: fetched
// catalogs, the current service list, and the current selections. It is an
// explicit object handed to the navigator, browser, and submission flow so
// tests can instantiate independent stores.
package state
