package entities

import "time"

// AgentRole tags what an actor may do to an order. A role value replaces the
// user-type inheritance of earlier versions of the system: approving,
// rejecting and contract signing are role checks, not subtype behavior.

type AgentRole string

const (
	RoleAgente        AgentRole = "agente"
	RoleAdministrador AgentRole = "administrador"
)

// Agent is the evaluating party: it reviews orders and signs credit
// contracts.

type Agent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      AgentRole `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanEvaluate reports whether the agent may decide order transitions.
func (a *Agent) CanEvaluate() bool {
	return a.Active && (a.Role == RoleAgente || a.Role == RoleAdministrador)
}
