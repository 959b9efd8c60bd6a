// internal/entity/ecs.go
package entity

import (
	"go-sphere-pop/internal/component"
	"go-sphere-pop/internal/types"
)

type ECS struct {
	NextID     types.EntityID
	Tick       int
	Mode       component.Mode
	Score      *component.Score
	Order      []types.EntityID // Живые цели в порядке появления, он же порядок проверки клика
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Targets    map[types.EntityID]*component.Target
	Particles  []*component.Particle
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Mode:       component.PlayMode,
		Score:      &component.Score{},
		Order:      make([]types.EntityID, 0),
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Targets:    make(map[types.EntityID]*component.Target),
		Particles:  make([]*component.Particle, 0),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// CreateTarget создаёт неподвижную цель в точке (x, y) и ставит её в конец очереди.
func (ecs *ECS) CreateTarget(x, y, size float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Targets[id] = &component.Target{Size: size}
	ecs.Order = append(ecs.Order, id)
	return id
}

// RemoveTarget удаляет цель из всех хранилищ. Возвращает false, если цели нет.
func (ecs *ECS) RemoveTarget(id types.EntityID) bool {
	if _, ok := ecs.Targets[id]; !ok {
		return false
	}
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Targets, id)
	for i, other := range ecs.Order {
		if other == id {
			ecs.Order = append(ecs.Order[:i], ecs.Order[i+1:]...)
			break
		}
	}
	return true
}

// LiveTargets возвращает количество живых целей.
func (ecs *ECS) LiveTargets() int {
	return len(ecs.Order)
}
