package interfaces

// IVehicleLock serializes booking-affecting work per vehicle. The conflict
// scan and the subsequent write must run as one unit, otherwise two
// concurrent requests can both pass the scan and double-book the vehicle.

type IVehicleLock interface {
	// Do runs fn while holding the lock for vehicleID and returns fn's error.
	Do(vehicleID string, fn func() error) error
}
