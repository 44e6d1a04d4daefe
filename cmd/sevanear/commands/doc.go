// Package commands defines the sevanear CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hospitals      List the hospital catalog
//   - service-types  List the service categories
//   - search         List the services of one hospital
//   - nearby         List services around the current position
//   - show           Print one service in full
//   - add            Submit a new service listing
//   - browse         Interactive multi-page terminal UI
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph (data
// source, state store, navigator, services) before any subcommand runs, so
// handlers share one app context. The --fixture flag swaps the live backend
// for canned sample data.
package commands
