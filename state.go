package whitelist

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// State is the view state owned by a Session. All fields start at their zero
// values and are reset only by constructing a new session.
type State struct {
	// WalletConnected reports whether a wallet session is established.
	WalletConnected bool

	// JoinedWhitelist reports whether the connected account is registered.
	JoinedWhitelist bool

	// Loading reports whether a join transaction is in flight, strictly
	// between submission and confirmation.
	Loading bool

	// NumberOfWhitelisted is the registration count last read from the
	// registry.
	NumberOfWhitelisted int
}

// Alerts is the user-visible failure surface of a session. Each remote
// operation owns exactly one slot: it sets the slot when it fails and clears
// it when it succeeds, so concurrent operations never contend on a slot. An
// empty string means no alert.
type Alerts struct {
	// Network is set when connecting fails, most prominently when the
	// wallet is on the wrong network.
	Network string

	// Count is set when reading the registration count fails.
	Count string

	// Membership is set when reading the account's membership fails.
	Membership string

	// Join is set when submitting or confirming a join transaction fails.
	Join string
}

// Lines returns the non-empty alerts in fixed slot order.
func (a Alerts) Lines() []string {
	var lines []string
	for _, s := range []string{a.Network, a.Count, a.Membership, a.Join} {
		if s != "" {
			lines = append(lines, s)
		}
	}

	return lines
}

// Snapshot is an immutable copy of a session's state, taken under the
// session lock and safe to render from any goroutine.
type Snapshot struct {
	SessionID uuid.UUID
	Account   common.Address
	State     State
	Alerts    Alerts
}

// Affordance identifies the single call-to-action a rendered page presents.
type Affordance string

const (
	// AffordanceConnect prompts the user to connect a wallet.
	AffordanceConnect Affordance = "connect"

	// AffordanceThanks is the static thank-you shown to registered accounts.
	AffordanceThanks Affordance = "thanks"

	// AffordanceLoading is the disabled control shown while a join
	// transaction awaits confirmation.
	AffordanceLoading Affordance = "loading"

	// AffordanceJoin prompts the user to register.
	AffordanceJoin Affordance = "join"
)

// View is the render model derived from a Snapshot.
type View struct {
	Affordance          Affordance
	NumberOfWhitelisted int
	Account             common.Address
	Alerts              []string
}

// View derives the render model for a snapshot. It is a pure function of the
// snapshot fields: no connection forces the connect affordance regardless of
// everything else, a registered account sees the thank-you, an in-flight
// join sees the disabled loading control, and anyone else is offered to
// join.
func (s Snapshot) View() View {
	v := View{
		NumberOfWhitelisted: s.State.NumberOfWhitelisted,
		Account:             s.Account,
		Alerts:              s.Alerts.Lines(),
	}

	switch {
	case !s.State.WalletConnected:
		v.Affordance = AffordanceConnect
	case s.State.JoinedWhitelist:
		v.Affordance = AffordanceThanks
	case s.State.Loading:
		v.Affordance = AffordanceLoading
	default:
		v.Affordance = AffordanceJoin
	}

	return v
}
