package locking

import (
	"sync"

	"aluguel_carros/internal/usecase/interfaces"
)

// VehicleLock is an in-process keyed mutex: one lock per vehicle id, created
// lazily and never released. The fleet is small enough that the map growing
// by one mutex per vehicle is not a concern.
//
// This serializes booking work within a single instance. Cross-instance
// safety comes from the repository's conditional writes; the lock exists so
// the common case never reaches that fallback.
type VehicleLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ interfaces.IVehicleLock = (*VehicleLock)(nil)

func NewVehicleLock() *VehicleLock {
	return &VehicleLock{locks: make(map[string]*sync.Mutex)}
}

func (l *VehicleLock) Do(vehicleID string, fn func() error) error {
	l.mu.Lock()
	m, ok := l.locks[vehicleID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[vehicleID] = m
	}
	l.mu.Unlock()

	m.Lock()
	defer m.Unlock()
	return fn()
}
