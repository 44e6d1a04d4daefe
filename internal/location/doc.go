// Package location resolves the device position through an ordered fallback
// chain of strategies. The chain's contract is that it always resolves:
// callers that trigger nearby searches do not handle a missing location, so
// a denied or absent capability degrades to a fixed default coordinate.
package location
