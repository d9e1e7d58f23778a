package scene2d

import "math"

// affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine = [6]float64

// identityAffine is the identity affine matrix.
var identityAffine = affine{1, 0, 0, 1, 0, 0}

// localTransform computes the local affine matrix for a node with the given
// pivot (the anchor point in local pixels).
//
// Composition order: Translate(-pivot) -> Scale -> Rotate -> Translate(x, y)
func localTransform(n *node, pivotX, pivotY float64) affine {
	sx := n.scaleX
	sy := n.scaleY
	sin, cos := math.Sincos(n.rotation)

	// After Scale * Translate(-pivot):
	//   a=sx, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -pivotX * sx
	preTy := -pivotY * sy

	return affine{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.x,
		sin*preTx + cos*preTy + n.y,
	}
}

// mulAffine multiplies two affine matrices: result = parent * child.
func mulAffine(p, c affine) affine {
	return affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// applyAffine transforms the point (x, y) by m.
func applyAffine(m affine, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
