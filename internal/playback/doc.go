// Package playback owns the Idle/Running state machine that sits between a
// render surface and the engine.
//
// A [Controller] holds the working dataset and the latest frame, runs at
// most one driver at a time and pushes every frame to a [Surface]. Start
// toggles: while a run is active it acts as Stop. Stop marks the controller
// idle at once and does not wait for the driver; the abandoned run notices
// the cancelled context on its next step and exits without touching the
// controller's state.
//
// Reconfiguration (reset, size, category, algorithm) is ignored while a run
// is active. Speed may change at any time and applies from the next step.
package playback
