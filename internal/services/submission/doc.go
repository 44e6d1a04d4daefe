// Package submission collects the add-service form, coerces its numeric
// fields, and posts the draft through the data source.
package submission
