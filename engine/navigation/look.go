package navigation

func (c *controllerImpl) SetDragging(dragging bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dragging && !c.dragging {
		c.firstLook = true
	}
	c.dragging = dragging
}

func (c *controllerImpl) CursorMoved(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dragging || !directMode(c.mode) {
		c.lastX, c.lastY = x, y
		return
	}

	if c.firstLook {
		c.lastX, c.lastY = x, y
		c.firstLook = false
	}

	// screen y grows downward
	dx := float32(x-c.lastX) * c.tuning.MouseSensitivity
	dy := float32(c.lastY-y) * c.tuning.MouseSensitivity
	c.lastX, c.lastY = x, y

	if dx == 0 && dy == 0 {
		return
	}
	c.yaw += dx
	c.pitch += dy
	c.updateFront()
}

// directMode reports whether mode uses direct WASD movement and mouse look.
func directMode(mode Mode) bool {
	return mode == ModeFreeCustom || mode == ModeRecordPath
}
