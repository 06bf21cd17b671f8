package scene

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/math"
)

/** @brief The maximum number of point lights a scene holds. */
const MaxLights = 8

/**
 * @brief A point light. The colour alpha is unused; rgb above one acts as intensity.
 */
type PointLight struct {
	Position math.Vec3
	Colour   math.Vec4
}

// Scene is the list of models to draw plus the lighting applied to them.
// It is safe for concurrent use.
type Scene struct {
	mu      sync.RWMutex
	models  []*Model
	ambient math.Vec4
	lights  []PointLight
}

func New() *Scene {
	return &Scene{
		models: make([]*Model, 0),
		lights: make([]PointLight, 0, MaxLights),
	}
}

// Clear removes every model. Lights and ambient are left alone.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = s.models[:0]
}

func (s *Scene) Add(m *Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = append(s.models, m)
}

// Models returns a snapshot of the scene content.
func (s *Scene) Models() []*Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Model, len(s.models))
	copy(out, s.models)
	return out
}

func (s *Scene) SetAmbient(colour math.Vec4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambient = colour
}

func (s *Scene) Ambient() math.Vec4 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambient
}

func (s *Scene) AddLight(position math.Vec3, colour math.Vec4) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lights) >= MaxLights {
		return fmt.Errorf("%w: %d", core.ErrTooManyLights, MaxLights)
	}
	s.lights = append(s.lights, PointLight{Position: position, Colour: colour})
	return nil
}

// Replace swaps in new content in one step: models, ambient and lights.
// Too many lights is an error and leaves the scene untouched.
func (s *Scene) Replace(models []*Model, ambient math.Vec4, lights []PointLight) error {
	if len(lights) > MaxLights {
		return fmt.Errorf("%w: %d", core.ErrTooManyLights, MaxLights)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = append(make([]*Model, 0, len(models)), models...)
	s.ambient = ambient
	s.lights = append(make([]PointLight, 0, MaxLights), lights...)
	return nil
}

func (s *Scene) ClearLights() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = s.lights[:0]
}

func (s *Scene) Lights() []PointLight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PointLight, len(s.lights))
	copy(out, s.lights)
	return out
}
