package whitelist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/mar-cial/whitelist/metrics"
)

// Alert texts shown when a remote operation fails. They are fixed so the
// rendered failure states stay deterministic.
const (
	alertConnectFailed    = "could not connect a wallet"
	alertCountFailed      = "could not read the number of registered addresses"
	alertMembershipFailed = "could not check the registration of the connected account"
	alertJoinFailed       = "the join transaction failed"
	alertJoinReverted     = "the join transaction reverted, the registry was not changed"
)

// Session is the view controller for the whitelist registry. It owns the
// view state a client renders from, the wallet connection behind it, and the
// remote operations that mutate that state.
//
// A session starts disconnected and stays connected until it is closed;
// nothing short of that resets its state. All methods are safe for
// concurrent use.
type Session struct {
	id       uuid.UUID
	provider WalletProvider
	lggr     *zap.SugaredLogger
	metrics  *metrics.Metrics

	mu      sync.Mutex
	conn    *Conn
	state   State
	alerts  Alerts
	joining bool
}

// NewSession creates a new disconnected Session backed by provider.
func NewSession(provider WalletProvider) *Session {
	return &Session{
		id:       uuid.New(),
		provider: provider,
		lggr:     zap.NewNop().Sugar(),
	}
}

// WithLogger sets the logger used by the session.
func (s *Session) WithLogger(lggr *zap.SugaredLogger) *Session {
	if lggr != nil {
		s.lggr = lggr
	}

	return s
}

// WithMetrics sets the metrics recorded by the session.
func (s *Session) WithMetrics(m *metrics.Metrics) *Session {
	s.metrics = m

	return s
}

// ID returns the session identifier carried in log entries and snapshots.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Connect establishes the wallet session. It is idempotent while a
// connection is live.
//
// A *WrongNetworkError from the provider surfaces on the network alert slot
// and leaves the connected flag untouched. On success both follow-up reads,
// the registration count and (for signing sessions) the account's
// membership, are dispatched concurrently and joined before Connect
// returns; their failures surface on their own alert slots and do not fail
// the connect.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.conn != nil {
		s.mu.Unlock()
		return nil
	}
	// A fresh attempt invalidates the previous attempt's alert.
	s.alerts.Network = ""
	s.mu.Unlock()

	s.metrics.IncrementConnectAttempts()

	conn, err := s.provider.Connect(ctx)
	if err != nil {
		alert := alertConnectFailed

		var wrongNet *WrongNetworkError
		if errors.As(err, &wrongNet) {
			s.metrics.IncrementWrongNetwork()
			alert = wrongNet.Error()
		}

		s.mu.Lock()
		s.alerts.Network = alert
		s.mu.Unlock()

		s.lggr.Errorw("wallet connection failed", "session", s.id, "err", err)

		return fmt.Errorf("connect wallet: %w", err)
	}

	s.mu.Lock()
	if s.conn != nil {
		// Lost a connect race; keep the established session.
		s.mu.Unlock()
		conn.Close()

		return nil
	}
	s.conn = conn
	s.state.WalletConnected = true
	s.mu.Unlock()

	s.lggr.Infow("wallet connected", "session", s.id, "account", conn.Account().Hex(), "readonly", conn.ReadOnly())

	// Both reads report their own failures through alert slots and must not
	// fail an established connection, so their errors stop here. They write
	// disjoint state fields and may complete in either order.
	var g errgroup.Group
	g.Go(func() error {
		return s.RefreshCount(ctx)
	})
	if !conn.ReadOnly() {
		g.Go(func() error {
			return s.CheckMembership(ctx)
		})
	}
	_ = g.Wait()

	return nil
}

// RefreshCount reads the number of registered addresses from the registry
// into the session state.
func (s *Session) RefreshCount(ctx context.Context) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}

	count, err := conn.Inspector().NumWhitelisted(ctx)
	s.metrics.ObserveRegistryRead("numAddressesWhitelisted", err)
	if err != nil {
		s.mu.Lock()
		s.alerts.Count = alertCountFailed
		s.mu.Unlock()

		s.lggr.Errorw("registration count read failed", "session", s.id, "err", err)

		return fmt.Errorf("refresh count: %w", err)
	}

	s.mu.Lock()
	s.state.NumberOfWhitelisted = count
	s.alerts.Count = ""
	s.mu.Unlock()

	s.metrics.SetWhitelistedCount(count)

	return nil
}

// CheckMembership reads whether the connected account is registered into
// the session state. It needs a signing session; read-only sessions have no
// account to look up.
func (s *Session) CheckMembership(ctx context.Context) error {
	conn, err := s.connection()
	if err != nil {
		return err
	}
	if conn.ReadOnly() {
		return ErrSignerRequired
	}

	member, err := conn.Inspector().IsWhitelisted(ctx, conn.Account())
	s.metrics.ObserveRegistryRead("whitelistedAddresses", err)
	if err != nil {
		s.mu.Lock()
		s.alerts.Membership = alertMembershipFailed
		s.mu.Unlock()

		s.lggr.Errorw("membership read failed", "session", s.id, "account", conn.Account().Hex(), "err", err)

		return fmt.Errorf("check membership: %w", err)
	}

	s.mu.Lock()
	s.state.JoinedWhitelist = member
	s.alerts.Membership = ""
	s.mu.Unlock()

	return nil
}

// Join submits the self-registration transaction and awaits its
// confirmation. One join runs at a time; a second call while a transaction
// is in flight returns ErrJoinInFlight.
//
// The loading flag is raised strictly between submission and confirmation
// and is guaranteed to come back down on every exit path. After a confirmed
// join the count is refreshed (a refresh failure surfaces on the count
// alert, not as a join failure) and the membership flag is set without
// re-reading it from the registry.
func (s *Session) Join(ctx context.Context) error {
	s.mu.Lock()
	if s.conn == nil {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if s.conn.ReadOnly() {
		s.mu.Unlock()
		return ErrSignerRequired
	}
	if s.joining {
		s.mu.Unlock()
		return ErrJoinInFlight
	}
	s.joining = true
	executor := s.conn.Executor()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.joining = false
		s.mu.Unlock()
	}()

	if err := s.join(ctx, executor); err != nil {
		alert := alertJoinFailed

		var reverted *JoinRevertedError
		if errors.As(err, &reverted) {
			alert = alertJoinReverted
		}

		s.mu.Lock()
		s.alerts.Join = alert
		s.mu.Unlock()

		s.metrics.IncrementJoinFailed()
		s.lggr.Errorw("join failed", "session", s.id, "err", err)

		return err
	}

	s.mu.Lock()
	s.alerts.Join = ""
	s.mu.Unlock()

	return nil
}

func (s *Session) join(ctx context.Context, executor Executor) error {
	tx, err := executor.SubmitJoin(ctx)
	if err != nil {
		return fmt.Errorf("submit join: %w", err)
	}

	s.metrics.IncrementJoinSubmitted()

	s.setLoading(true)
	// Backstop for the failure paths below; the success path has already
	// lowered the flag by the time this runs.
	defer s.setLoading(false)

	receipt, err := executor.Confirm(ctx, tx)
	if err != nil {
		return fmt.Errorf("confirm join: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return NewJoinRevertedError(tx.Hash())
	}

	s.setLoading(false)
	s.metrics.IncrementJoinConfirmed()

	if err := s.RefreshCount(ctx); err != nil {
		s.lggr.Warnw("count refresh after join failed", "session", s.id, "err", err)
	}

	s.mu.Lock()
	s.state.JoinedWhitelist = true
	s.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the session's state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var account common.Address
	if s.conn != nil {
		account = s.conn.Account()
	}

	return Snapshot{
		SessionID: s.id,
		Account:   account,
		State:     s.state,
		Alerts:    s.alerts,
	}
}

// Close releases the wallet connection and returns the session to the
// disconnected state. Remote operations fail with ErrNotConnected until
// Connect establishes a new connection.
func (s *Session) Close() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.state.WalletConnected = false
	s.mu.Unlock()

	if conn == nil {
		return
	}
	conn.Close()

	s.lggr.Infow("wallet connection closed", "session", s.id)
}

func (s *Session) connection() (*Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, ErrNotConnected
	}

	return s.conn, nil
}

func (s *Session) setLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
}
