// Package tui renders the four-page UI in the terminal with bubbletea. The
// navigator decides which page is visible; Esc is the back signal and an
// unhandled back on the home page exits the program, mirroring the
// hardware-back contract of the mobile shell.
package tui
