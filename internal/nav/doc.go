// Package nav maps abstract page identifiers to a visible screen and owns
// the navigation history stack, including back-signal semantics: pop and
// replay while history remains, signal "exit the app" once only home is
// left.
package nav
