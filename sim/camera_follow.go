package sim

import "github.com/plus3/hopper/ecs"

// CameraFollowSystem feeds the tracked entity's height to the camera.
type CameraFollowSystem struct {
	Camera   Camera
	entities ecs.Query
}

func NewCameraFollowSystem(types Types, camera Camera) *CameraFollowSystem {
	return &CameraFollowSystem{
		Camera:   camera,
		entities: ecs.MustQuery(types.Transform, types.CameraTarget),
	}
}

func (s *CameraFollowSystem) Name() string { return "camera-follow" }

func (s *CameraFollowSystem) Update(dt float64, w *ecs.World) {
	if s.Camera == nil {
		return
	}
	targets := query(w, s.entities)
	if len(targets) == 0 {
		return
	}
	s.Camera.Update(dt, ecs.Get[Transform](w, targets[0]).Y)
}
