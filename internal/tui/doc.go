// Package tui implements the terminal user interface of the notes client.
//
// It is built on Bubble Tea: a root router model drives the authentication
// pages (welcome, login, register), and a separate main-loop model drives
// the notes screen with its sidebar, editor and autosave status line.
package tui
