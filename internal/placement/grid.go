package placement

import "math"

// Snap rounds a raw coordinate to the nearest multiple of the grid unit.
func Snap(v int) int {
	return int(math.Round(float64(v)/GridUnit)) * GridUnit
}

// fits reports whether a footprint with its top-left corner at (x, y) lies
// entirely within the region.
func fits(r Region, x, y, width, height int) bool {
	return x >= r.X &&
		y >= r.Y &&
		x+width <= r.X+r.Width &&
		y+height <= r.Y+r.Height
}

// Validate snaps the raw drop point and checks the footprint against the
// buildable region. Returns the snapped corner and whether the drop is
// accepted.
func Validate(rawX, rawY, width, height int) (snappedX, snappedY int, ok bool) {
	snappedX = Snap(rawX)
	snappedY = Snap(rawY)
	ok = fits(Buildable, snappedX, snappedY, width, height)
	return snappedX, snappedY, ok
}
