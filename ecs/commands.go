package ecs

import "errors"

// Commands buffers structural changes so a system can apply them after it has
// finished walking its query results. Nothing happens until Flush.
type Commands struct {
	spawns   []spawnCommand
	destroys []Entity
	adds     []addComponentCommand
	removes  []removeComponentCommand
	defers   []func()
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    Entity
	component any
}

type removeComponentCommand struct {
	entity Entity
	id     ComponentType
}

// Defer queues a function to run after every other command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(e Entity, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: e, component: component})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(e Entity, id ComponentType) {
	c.removes = append(c.removes, removeComponentCommand{entity: e, id: id})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.destroys) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the buffer to w and resets it. Destroys run first; removes
// and adds aimed at a destroyed entity are dropped. Spawns and adds that fail
// are reported together but do not stop the rest of the flush.
func (c *Commands) Flush(w *World) error {
	destroyed := make(map[Entity]struct{}, len(c.destroys))
	for _, e := range c.destroys {
		w.DestroyEntity(e)
		destroyed[e] = struct{}{}
	}

	var errs []error
	for _, cmd := range c.removes {
		if _, gone := destroyed[cmd.entity]; !gone {
			w.RemoveComponent(cmd.entity, cmd.id)
		}
	}

	for _, cmd := range c.adds {
		if _, gone := destroyed[cmd.entity]; !gone {
			if err := w.AddComponent(cmd.entity, cmd.component); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, cmd := range c.spawns {
		if _, err := w.Spawn(cmd.components...); err != nil {
			errs = append(errs, err)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
	return errors.Join(errs...)
}
