package sdl

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

// Controllers tracks the game controllers SDL has opened. It is the
// controller probe for immersive mode.
type Controllers struct {
	mu     sync.Mutex
	opened map[sdl.JoystickID]*sdl.GameController
}

func NewControllers() *Controllers {
	return &Controllers{opened: make(map[sdl.JoystickID]*sdl.GameController)}
}

// Scan opens every joystick SDL recognises as a game controller.
func (c *Controllers) Scan() {
	numJoysticks := sdl.NumJoysticks()
	internal.GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		c.Add(i)
	}

	internal.GetInternalLogger().Debug("Controller detection complete", "game_controllers", c.Count())
}

// Add opens the controller at the given device index.
func (c *Controllers) Add(index int) {
	if !sdl.IsGameController(index) {
		internal.GetInternalLogger().Debug("Ignoring joystick that is not a game controller", "index", index)
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		internal.GetInternalLogger().Error("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}

	id := controller.Joystick().InstanceID()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.opened[id]; ok {
		return
	}
	c.opened[id] = controller

	internal.GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

// Remove closes the controller with the given instance id.
func (c *Controllers) Remove(id sdl.JoystickID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	controller, ok := c.opened[id]
	if !ok {
		return
	}
	delete(c.opened, id)
	controller.Close()

	internal.GetInternalLogger().Debug("Closed game controller", "instance", id)
}

func (c *Controllers) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.opened)
}

func (c *Controllers) HasGamepads() bool {
	return c.Count() > 0
}

func (c *Controllers) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, controller := range c.opened {
		controller.Close()
		delete(c.opened, id)
	}
}
