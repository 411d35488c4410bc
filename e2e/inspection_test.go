//go:build e2e
// +build e2e

package e2e

import (
	"context"

	"github.com/stretchr/testify/suite"
)

// InspectionTestSuite covers the read surface of a live registry deployment.
type InspectionTestSuite struct {
	suite.Suite
	setup *TestSetup
}

func (s *InspectionTestSuite) SetupSuite() {
	s.setup = InitializeSharedTestSetup(s.T())
}

func (s *InspectionTestSuite) TestRegistryCounts() {
	ctx := context.Background()

	count, err := s.setup.Conn.Inspector().NumWhitelisted(ctx)
	s.Require().NoError(err, "Failed to read the registration count")

	limit, err := s.setup.Conn.Inspector().MaxWhitelisted(ctx)
	s.Require().NoError(err, "Failed to read the registry capacity")

	s.Require().GreaterOrEqual(count, 0, "Registration count is negative")
	s.Require().Positive(limit, "Registry capacity is zero")
	s.Require().LessOrEqual(count, limit, "Registration count exceeds the capacity")
}

func (s *InspectionTestSuite) TestMembershipRead() {
	ctx := context.Background()

	member, err := s.setup.Conn.Inspector().IsWhitelisted(ctx, s.setup.Conn.Account())
	s.Require().NoError(err, "Failed to read membership")

	if s.setup.Conn.ReadOnly() {
		s.Require().False(member, "The zero address cannot be registered")
	}
}
