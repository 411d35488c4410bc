//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/mar-cial/whitelist"
)

// SessionTestSuite exercises the session lifecycle against a live registry.
type SessionTestSuite struct {
	suite.Suite
	setup   *TestSetup
	session *whitelist.Session
}

func (s *SessionTestSuite) SetupSuite() {
	s.setup = InitializeSharedTestSetup(s.T())

	provider, err := s.setup.Config.Provider(zap.NewNop().Sugar())
	s.Require().NoError(err, "Failed to build provider")

	s.session = whitelist.NewSession(provider)
	s.Require().NoError(s.session.Connect(context.Background()), "Failed to connect session")
}

func (s *SessionTestSuite) TearDownSuite() {
	s.session.Close()
}

func (s *SessionTestSuite) TestConnectPopulatesState() {
	ctx := context.Background()

	s.Require().NoError(s.session.RefreshCount(ctx), "Failed to refresh the count")

	snap := s.session.Snapshot()
	s.Require().True(snap.State.WalletConnected, "Session is not connected")
	s.Require().False(snap.State.Loading, "No join is in flight")
	s.Require().Empty(snap.Alerts.Network, "Network alert is set")
	s.Require().Empty(snap.Alerts.Count, "Count alert is set")

	count, err := s.setup.Conn.Inspector().NumWhitelisted(ctx)
	s.Require().NoError(err, "Failed to read the registration count")
	s.Require().Equal(count, snap.State.NumberOfWhitelisted, "Session count does not match the registry")
}

func (s *SessionTestSuite) TestRepeatConnect() {
	s.Require().NoError(s.session.Connect(context.Background()), "Repeat connect failed")
}

// TestJoin submits a real transaction, so it only runs when asked for
// explicitly and the configured account is fresh.
func (s *SessionTestSuite) TestJoin() {
	if os.Getenv("WHITELIST_E2E_JOIN") == "" {
		s.T().Skip("set WHITELIST_E2E_JOIN=1 to submit a live join transaction")
	}

	snap := s.session.Snapshot()
	if snap.Account == (common.Address{}) {
		s.T().Skip("joining needs a configured signer")
	}
	if snap.State.JoinedWhitelist {
		s.T().Skipf("account %s is already registered", snap.Account)
	}

	s.Require().NoError(s.session.Join(context.Background()), "Join failed")

	snap = s.session.Snapshot()
	s.Require().True(snap.State.JoinedWhitelist, "Join did not mark the account registered")
	s.Require().False(snap.State.Loading, "Loading flag is still raised")
}
