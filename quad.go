package glquad

// QuadPositions are the 2D corners of a centered quad, counter-clockwise
// from bottom-left.
var QuadPositions = []float32{
	-0.5, -0.5, // 0
	0.5, -0.5, // 1
	0.5, 0.5, // 2
	-0.5, 0.5, // 3
}

// QuadIndices draws QuadPositions as two triangles.
var QuadIndices = TriangleFan(4)

// TriangleFan returns triangle indices fanning out from vertex 0 across a
// convex polygon of n vertices. It returns nil for fewer than 3 vertices.
func TriangleFan(n int) []uint32 {
	if n < 3 {
		return nil
	}
	indices := make([]uint32, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint32(i), uint32(i+1))
	}
	return indices
}
