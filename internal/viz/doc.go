// Package viz is the interactive terminal lab built on Bubble Tea.
//
// The lab shows the dataset as vertical bars coloured by highlight tag, the
// step status, the controls and a description of the selected algorithm.
// All state lives in a playback.Controller; the screen only forwards keys and
// draws what the controller reports.
//
// # Key Bindings
//
//	Space/Enter - Start, or stop the active run
//	R           - Draw a fresh dataset
//	C / A       - Cycle category / algorithm
//	[ ]         - Shrink / grow the dataset
//	+ -         - Faster / slower
//	/           - Edit the search value
//	T           - Cycle color themes
//	Q           - Quit
package viz
