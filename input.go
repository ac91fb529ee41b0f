package orrery

// Input is one frame's worth of user intent, already decoded from whatever
// device produced it.
type Input struct {
	OrbitLeft  bool
	OrbitRight bool
	OrbitUp    bool
	OrbitDown  bool

	PanLeft  bool
	PanRight bool
	PanUp    bool
	PanDown  bool

	ZoomIn  bool
	ZoomOut bool

	BirdsEye bool
	Normal   bool

	// Warp is a 1-based planet index; 0 means no warp.
	Warp int
}

// HandleInput turns an Input into camera intents using the configured
// control speeds.
func (s *Scene) HandleInput(in Input) {
	c := s.Camera
	ctl := s.Config.Controls

	if in.Warp > 0 {
		s.WarpTo(in.Warp - 1)
	}

	if in.OrbitLeft {
		c.Orbit(ctl.RotationSpeed, 0)
	}
	if in.OrbitRight {
		c.Orbit(-ctl.RotationSpeed, 0)
	}
	if in.OrbitUp {
		c.Orbit(0, -ctl.RotationSpeed)
	}
	if in.OrbitDown {
		c.Orbit(0, ctl.RotationSpeed)
	}

	var pan Vector
	if in.PanLeft {
		pan.X -= ctl.MovementSpeed
	}
	if in.PanRight {
		pan.X += ctl.MovementSpeed
	}
	if in.PanUp {
		pan.Y += ctl.MovementSpeed
	}
	if in.PanDown {
		pan.Y -= ctl.MovementSpeed
	}
	if pan.Length() > 0 {
		c.MoveCenter(pan)
	}

	if in.ZoomIn {
		c.Zoom(ctl.ZoomSpeed)
	}
	if in.ZoomOut {
		c.Zoom(-ctl.ZoomSpeed)
	}

	if in.BirdsEye {
		c.SwitchToBirdsEye()
	}
	if in.Normal {
		c.SwitchToNormal()
	}
}
