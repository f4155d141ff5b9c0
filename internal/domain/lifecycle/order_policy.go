package lifecycle

import (
	"aluguel_carros/internal/domain/entities"
)

// OrderPolicy bundles the transition table of a deployment profile with the
// set of statuses in which an order may still be modified by its customer.

type OrderPolicy struct {
	Machine    *Machine[entities.OrderStatus]
	modifiable map[entities.OrderStatus]bool
	hasReview  bool
}

func (p *OrderPolicy) Modifiable(s entities.OrderStatus) bool {
	return p.modifiable[s]
}

// HasReview reports whether the profile includes the em_analise gate.
func (p *OrderPolicy) HasReview() bool {
	return p.hasReview
}

// DirectOrderPolicy is the profile without a review gate: pending orders are
// decided straight away.
func DirectOrderPolicy() *OrderPolicy {
	return &OrderPolicy{
		Machine: NewMachine(map[entities.OrderStatus][]entities.OrderStatus{
			entities.OrderStatusPendente: {
				entities.OrderStatusAprovado,
				entities.OrderStatusRejeitado,
				entities.OrderStatusCancelado,
			},
			entities.OrderStatusAprovado: {
				entities.OrderStatusCancelado,
				entities.OrderStatusFinalizado,
			},
		}),
		modifiable: map[entities.OrderStatus]bool{
			entities.OrderStatusPendente: true,
		},
	}
}

// ReviewOrderPolicy adds the em_analise gate: an agent pulls a pending order
// into evaluation before approving or rejecting it.
func ReviewOrderPolicy() *OrderPolicy {
	return &OrderPolicy{
		Machine: NewMachine(map[entities.OrderStatus][]entities.OrderStatus{
			entities.OrderStatusPendente: {
				entities.OrderStatusEmAnalise,
				entities.OrderStatusCancelado,
			},
			entities.OrderStatusEmAnalise: {
				entities.OrderStatusAprovado,
				entities.OrderStatusRejeitado,
			},
			entities.OrderStatusAprovado: {
				entities.OrderStatusCancelado,
				entities.OrderStatusFinalizado,
			},
		}),
		modifiable: map[entities.OrderStatus]bool{
			entities.OrderStatusPendente:  true,
			entities.OrderStatusEmAnalise: true,
		},
		hasReview: true,
	}
}

// ContractMachine is the credit-contract lifecycle: quitado and cancelado are
// terminal, a suspended contract can still be settled or canceled.
func ContractMachine() *Machine[entities.ContractStatus] {
	return NewMachine(map[entities.ContractStatus][]entities.ContractStatus{
		entities.ContractStatusAtivo: {
			entities.ContractStatusQuitado,
			entities.ContractStatusSuspenso,
			entities.ContractStatusCancelado,
		},
		entities.ContractStatusSuspenso: {
			entities.ContractStatusQuitado,
			entities.ContractStatusCancelado,
		},
	})
}
