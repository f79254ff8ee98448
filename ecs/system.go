package ecs

// System is one step of the fixed-tick pipeline. Systems hold their own
// queries and collaborators; component data lives in the World.
type System interface {
	Name() string
	Update(dt float64, w *World)
}

// Destroyer is implemented by systems that release resources when the
// scheduler is torn down.
type Destroyer interface {
	OnDestroy()
}
