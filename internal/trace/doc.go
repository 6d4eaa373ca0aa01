// Package trace models a recorded compiler-pipeline run: the frozen
// sequence of pass steps the dashboard navigates, plus run-level metadata.
// Sequences are append-only while a run is being collected and immutable
// once frozen.
package trace
