// Package engine drives a [drivers.Driver] to completion one frame at a time.
//
// A [Runner] owns the step loop:
//
//  1. check the context; a cancelled context ends the run
//  2. ask the driver for its next emission
//  3. hand the frame to every [Metric] and [Observer]
//  4. suspend for the emission's pause
//
// The pause for ordinary steps is read from a [DelaySource] on every step,
// so a speed change made while a run is in flight takes effect from the next
// step onward. Sleeping goes through a [SleepFunc]; the default [Sleep]
// returns early when the context is cancelled.
//
// # Example
//
//	r := engine.New(drivers.NewBubble(frame.LangID))
//	r.AddMetric(metrics.NewComparisons())
//	res, err := r.Run(ctx, data, engine.Config{Delay: engine.FixedSpeed(800)})
//
// # Thread Safety
//
// Runner instances are NOT thread-safe. Use [Batch] to run several drivers
// in parallel.
package engine
