// Package analysis measures how the algorithms behave beyond a single run.
//
//   - [Sweep]: mean comparisons, writes and frames per dataset size
//   - [Inversions]: number of out-of-order pairs in a dataset
//   - [Trace]: per-frame inversion and sortedness series for one run
//
// # Complexity Sweep
//
// Sweep runs every (size, trial) pair concurrently with the engine's
// no-sleep pause, so results arrive at full speed:
//
//	points, err := analysis.Sweep(ctx, reg, analysis.SweepConfig{
//	    Algorithm: "insertion",
//	    Sizes:     []int{10, 20, 30, 40, 50},
//	    Trials:    20,
//	})
package analysis
