package ecs

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Entity is an opaque handle: a dense index in the low 32 bits and a
// generation in the high 32 bits. Indices start at 1, so the zero Entity is
// never handed out and reads as "no entity".
type Entity uint64

type entityID uint32
type generation uint32

const (
	entityIDBits = 32
	entityIDMask = 1<<entityIDBits - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint64(e) & entityIDMask)
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> entityIDBits)
}

// String formats e as index/generation, e.g. "12v3".
func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// MarshalLogObject lets an Entity be logged with zap.Object.
func (e Entity) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("index", uint32(e.id()))
	enc.AddUint32("generation", uint32(e.generation()))
	return nil
}
