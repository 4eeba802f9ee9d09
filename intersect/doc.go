// Package intersect finds the crossings of a plane polygon diagram.
//
// Every unordered pair of non-adjacent edges (i,i+1), (j,j+1) is tested;
// edges that share an endpoint (j ∈ {i-1, i, i+1} mod N) are never tested.
// For a candidate pair the parametric system a0 + s·da = b0 + u·db is solved
// by Cramer's rule. A zero determinant means parallel edges and is reported
// as "no intersection"; only parallel edges that overlap along a common line
// are a data error (ErrOverlappingEdges). A solution counts only when it lies
// strictly inside both segments.
//
// Results are ordered by (EdgeA, ParamA): grouped by the lower edge index and,
// on one edge, by position along that edge. Downstream stages walk this order,
// so it never depends on discovery order or on the number of workers.
//
// Complexity: O(N²) pair tests. WithWorkers(n) spreads the rows of the pair
// scan over n goroutines; the result is identical to the sequential scan.
package intersect
