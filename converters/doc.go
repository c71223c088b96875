// Package converters adapts gridpath grids to external graph libraries.
//
//   - ToGonum exports any core.GridView as a gonum weighted directed graph.
//     Node IDs are row-major cell indices (y*width + x); every edge carries
//     the GridView's EdgeCost.
//   - OptimalCost runs gonum's Dijkstra over that graph and returns the
//     reference optimum for the view's start and goal.
//
// Use converters to cross-check gridpath strategies against an independent
// implementation, or to feed grids into gonum's wider algorithm set.
package converters
