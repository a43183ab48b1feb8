package pickuprepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/pickuprepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pickup"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type PickupRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *pickuprepo.GormPickupRepository
}

func (suite *PickupRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *PickupRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = pickuprepo.NewGormPickupRepository(suite.database.DB)
}

func (suite *PickupRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *PickupRepositoryIntegrationTestSuite) TestAddGetUpdate() {
	ctx := context.Background()
	p := suite.newPickup("INT-1", date(2024, 3, 1), "Portería")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("INT-1", got.InternalNumber())
	suite.True(got.Date().Equal(date(2024, 3, 1)))
	suite.Equal("Portería", got.Notes())

	suite.Require().NoError(got.Update("INT-2", date(2024, 3, 2), ""))
	suite.Require().NoError(suite.repository.Update(ctx, got))

	updated, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("INT-2", updated.InternalNumber())
	suite.True(updated.Date().Equal(date(2024, 3, 2)))
	suite.Empty(updated.Notes())
}

func (suite *PickupRepositoryIntegrationTestSuite) TestGetAndUpdate_Missing_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, suite.newPickup("INT-1", date(2024, 3, 1), ""))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PickupRepositoryIntegrationTestSuite) TestGetAll_NewestDateFirst() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPickup("OLD", date(2024, 1, 5), "")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPickup("NEW", date(2024, 2, 5), "")))

	pickups, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(pickups, 2)
	suite.Equal("NEW", pickups[0].InternalNumber())
	suite.Equal("OLD", pickups[1].InternalNumber())
}

func (suite *PickupRepositoryIntegrationTestSuite) newPickup(internalNumber string, d time.Time, notes string) *pickup.Pickup {
	p, err := pickup.NewPickup(internalNumber, d, notes)
	suite.Require().NoError(err)
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPickupRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PickupRepositoryIntegrationTestSuite))
}
