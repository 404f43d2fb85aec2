package ghost

// Frame is the resolved state of one recorded tick.
//
// Cumulative fields hold absolute values; *Change fields hold this tick's
// delta. Flags and Event apply to this tick only.
type Frame struct {
	Index int

	CumulativeTime float64
	FrameTime      float64

	Pos       Vector3
	PosChange Vector3

	FacingAngle       float64
	FacingAngleChange float64

	CameraPitch       float64
	CameraPitchChange float64

	Grounded          bool
	Stomping          bool
	Ziplining         bool
	PlayShotAnimation bool

	Event TriggerEvent

	BulletID     int64
	BulletHitPos Vector3
}

// NewFrame returns an empty frame carrying no event
func NewFrame(index int) Frame {
	return Frame{Index: index, Event: NoEvent{}}
}

// CarryFrom copies the cumulative values of prev into f
func (f *Frame) CarryFrom(prev Frame) {
	f.CumulativeTime = prev.CumulativeTime
	f.Pos = prev.Pos
	f.FacingAngle = prev.FacingAngle
	f.CameraPitch = prev.CameraPitch
}

// Accumulate adds this tick's deltas to the carried cumulative values
func (f *Frame) Accumulate() {
	f.CumulativeTime += f.FrameTime
	f.Pos = f.Pos.Add(f.PosChange)
	f.FacingAngle += f.FacingAngleChange
	f.CameraPitch += f.CameraPitchChange
}
