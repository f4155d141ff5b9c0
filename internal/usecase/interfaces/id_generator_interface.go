package interfaces

// IIDGenerator produces opaque entity ids. Injected rather than called
// statically so tests can pin ids and deployments can swap the scheme.

type IIDGenerator interface {
	NewID() string
}
