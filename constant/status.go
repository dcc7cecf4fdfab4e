package constant

type InboundStatus string

const (
	InboundStatusPending   InboundStatus = "PENDING"
	InboundStatusConfirmed InboundStatus = "CONFIRMED"
)

type OutboundStatus string

const (
	OutboundStatusPendingPick OutboundStatus = "PENDING_PICK"
	OutboundStatusPicked      OutboundStatus = "PICKED"
	OutboundStatusShipped     OutboundStatus = "SHIPPED"
)

type StocktakeStatus string

const (
	StocktakeStatusDraft     StocktakeStatus = "DRAFT"
	StocktakeStatusSubmitted StocktakeStatus = "SUBMITTED"
)

// Allowed transitions per document type. Statuses without an entry are terminal.
var (
	InboundTransitions = map[InboundStatus][]InboundStatus{
		InboundStatusPending: {InboundStatusConfirmed},
	}
	OutboundTransitions = map[OutboundStatus][]OutboundStatus{
		OutboundStatusPendingPick: {OutboundStatusPicked},
		OutboundStatusPicked:      {OutboundStatusShipped},
	}
	StocktakeTransitions = map[StocktakeStatus][]StocktakeStatus{
		StocktakeStatusDraft: {StocktakeStatusSubmitted},
	}
)

func (s InboundStatus) CanTransitionTo(next InboundStatus) bool {
	return contains(InboundTransitions[s], next)
}

// Editable reports whether items may still be replaced.
func (s InboundStatus) Editable() bool {
	return s == InboundStatusPending
}

func (s OutboundStatus) CanTransitionTo(next OutboundStatus) bool {
	return contains(OutboundTransitions[s], next)
}

// Deletable reports whether the order (and its reservation) may be dropped.
func (s OutboundStatus) Deletable() bool {
	return s == OutboundStatusPendingPick
}

func (s StocktakeStatus) CanTransitionTo(next StocktakeStatus) bool {
	return contains(StocktakeTransitions[s], next)
}

func contains[T comparable](list []T, v T) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
