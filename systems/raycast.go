package systems

import (
	"math"

	"github.com/automoto/breachpoint/components"
	"github.com/solarlune/resolv"
)

// RayHit describes the nearest object struck by a cast ray.
type RayHit struct {
	Object   *resolv.Object
	Position components.Vector
	Distance float64
}

// CastRay walks the segment from->to against every object in the space
// carrying one of the given resolv tags and returns the nearest hit, or
// nil. Objects listed in ignore are skipped.
func CastRay(space *resolv.Space, from, to components.Vector, ignore []*resolv.Object, rayTags ...string) *RayHit {
	var nearest *RayHit

	for _, obj := range space.Objects() {
		if !hasAnyTag(obj, rayTags) {
			continue
		}
		if isIgnored(obj, ignore) {
			continue
		}

		t, ok := segmentIntersectsRect(from, to, obj.X, obj.Y, obj.W, obj.H)
		if !ok {
			continue
		}

		dx := to.X - from.X
		dy := to.Y - from.Y
		hit := &RayHit{
			Object:   obj,
			Position: components.Vector{X: from.X + dx*t, Y: from.Y + dy*t},
			Distance: t * math.Hypot(dx, dy),
		}
		if nearest == nil || hit.Distance < nearest.Distance {
			nearest = hit
		}
	}

	return nearest
}

func hasAnyTag(obj *resolv.Object, rayTags []string) bool {
	for _, tag := range rayTags {
		if obj.HasTags(tag) {
			return true
		}
	}
	return false
}

func isIgnored(obj *resolv.Object, ignore []*resolv.Object) bool {
	for _, ig := range ignore {
		if obj == ig {
			return true
		}
	}
	return false
}

// segmentIntersectsRect performs a slab test of the segment from->to
// against an axis-aligned rectangle. It returns the entry parameter
// t in [0,1]; a segment starting inside the rectangle hits at t=0.
func segmentIntersectsRect(from, to components.Vector, x, y, w, h float64) (float64, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y

	tMin := 0.0
	tMax := 1.0

	for axis := 0; axis < 2; axis++ {
		var origin, dir, lo, hi float64
		if axis == 0 {
			origin, dir, lo, hi = from.X, dx, x, x+w
		} else {
			origin, dir, lo, hi = from.Y, dy, y, y+h
		}

		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}
