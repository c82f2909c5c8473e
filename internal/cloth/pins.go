package cloth

// PinPolicy decides which grid particles are fixed.
type PinPolicy interface {
	Pinned(i, j, length, width int) bool
}

// RollerContactPins fixes the edge columns of the rows where the band wraps
// the rollers: rows 0..Window+1 at the left roller and mid-Window..mid+Window
// at the right, with mid = length/2.
type RollerContactPins struct {
	Window      int
	EdgeColumns int
}

func DefaultPins() RollerContactPins {
	return RollerContactPins{Window: 1, EdgeColumns: 2}
}

func (p RollerContactPins) Pinned(i, j, length, width int) bool {
	if j >= p.EdgeColumns && j < width-p.EdgeColumns {
		return false
	}
	if i <= p.Window+1 {
		return true
	}
	mid := length / 2
	return i >= mid-p.Window && i <= mid+p.Window
}

// NoPins leaves every particle free.
type NoPins struct{}

func (NoPins) Pinned(i, j, length, width int) bool { return false }
