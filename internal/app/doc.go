// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, then builds the preferences store,
// session, client factory, remote data sources and repositories, exposing
// them via the Wire struct for commands to use.
package app
