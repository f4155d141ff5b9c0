package ids

import (
	"github.com/google/uuid"

	"aluguel_carros/internal/usecase/interfaces"
)

// UUIDGenerator issues UUIDv4 strings. Ids are opaque to the rest of the
// system; nothing may parse them or depend on their ordering.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = (*UUIDGenerator)(nil)

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
