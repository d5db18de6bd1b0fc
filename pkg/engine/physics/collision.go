package physics

// identity resolves proxies to the collidable they stand in for.
func identity(c Collidable) Collidable {
	if o, ok := c.(Owned); ok && o.Owner() != nil {
		return o.Owner()
	}
	return c
}

// SameIdentity reports whether a and b are the same logical entity.
func SameIdentity(a, b Collidable) bool {
	return identity(a) == identity(b)
}

// Collides reports whether a and b overlap. Each is treated as a box centred on its
// image centre with half-extents taken from its hitbox; the comparison is strict so
// boxes that only touch do not collide.
func Collides(a, b Collidable) bool {
	if SameIdentity(a, b) {
		return false
	}
	return overlaps(a.Body(), b.Body())
}

func overlaps(a, b Body) bool {
	acx, acy := a.Center()
	bcx, bcy := b.Center()
	return centresOverlap(acx, acy, bcx, bcy, a, b)
}

func centresOverlap(acx, acy, bcx, bcy int, a, b Body) bool {
	arx, ary := a.Radii()
	brx, bry := b.Radii()
	return abs(acx-bcx) < abs(arx)+abs(brx) && abs(acy-bcy) < abs(ary)+abs(bry)
}

// CollidesSized is Collides with explicit sprite diameters. Each centre is the body's
// top-left corner offset by half its diameter on both axes.
func CollidesSized(a, b Collidable, aDiameter, bDiameter int) bool {
	if SameIdentity(a, b) {
		return false
	}
	ab, bb := a.Body(), b.Body()
	return centresOverlap(ab.X+aDiameter/2, ab.Y+aDiameter/2, bb.X+bDiameter/2, bb.Y+bDiameter/2, ab, bb)
}

// CircleSquareCollides reports whether the circle inscribed in circle's hitbox width
// overlaps rect's hitbox.
func CircleSquareCollides(circle, rect Collidable) bool {
	cb, rb := circle.Body(), rect.Body()
	ccx, ccy := cb.Center()
	rcx, rcy := rb.Center()
	radius := cb.W / 2
	halfW, halfH := rb.W/2, rb.H/2

	dx := abs(ccx - rcx)
	dy := abs(ccy - rcy)
	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}
	cornerX := dx - halfW
	cornerY := dy - halfH
	return cornerX*cornerX+cornerY*cornerY <= radius*radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
