package access

type State string

const (
	StateTrial   State = "trial"
	StatePremium State = "premium"
	StateFree    State = "free"
)
