// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: restore or establish a session, run the notes main
// loop, and start over after a logout.
package client
