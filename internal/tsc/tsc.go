// Package tsc reads the processor's timestamp counter for cheap,
// low-overhead interval measurement around transactional sections.
package tsc
