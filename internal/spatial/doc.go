// Package spatial implements an axis-aligned bounding-volume hierarchy over
// located items.
//
// A Tree is built once from a slice of items that each report a Box and is
// immutable afterwards, so any number of goroutines may query it without
// synchronization. Queries answer which items contain a point, overlap a box,
// or are crossed by a ray. Point and box queries return items in the tree's
// leaf order, which is fixed for a given input order; ray hits come back
// nearest first.
package spatial
