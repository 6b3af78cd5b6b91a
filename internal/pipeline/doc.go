// Package pipeline runs the rle codec over chunks in parallel and stitches the
// results back together in chunk order.
//
// Stages:
//   - chunk.Split / chunk.SplitAligned decide boundaries up front.
//   - Run starts one goroutine per chunk and waits for all of them.
//   - Join restores chunk order by index, never by completion order.
//
// Process strings the three together for one-shot use.
package pipeline
