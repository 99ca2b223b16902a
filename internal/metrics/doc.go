// Package metrics provides per-run engine metrics and the process-wide
// Prometheus collectors.
//
// Engine metrics ([Comparisons], [Writes], [Frames], [Sortedness]) are reset
// at the start of every run and read once it ends. Prometheus collectors are
// registered with the default registry and exported by the HTTP API.
package metrics
