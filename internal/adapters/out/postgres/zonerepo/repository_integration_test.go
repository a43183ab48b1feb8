package zonerepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/zonerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// ZoneRepositoryIntegrationTestSuite verifies zone persistence against PostgreSQL.
type ZoneRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *zonerepo.GormZoneRepository
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = zonerepo.NewGormZoneRepository(suite.database.DB)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	z := suite.newZone("Norte", "5000.50")

	suite.Require().NoError(suite.repository.Add(ctx, z))

	got, err := suite.repository.Get(ctx, kernel.MustName("Norte"))
	suite.Require().NoError(err)
	suite.Equal("Norte", got.Name().String())
	suite.True(got.Rate().IsEqual(kernel.MustMoney("5000.50")))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAdd_Duplicate_AlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newZone("Norte", "5000")))

	err := suite.repository.Add(ctx, suite.newZone("Norte", "6000"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestUpdate_ChangesRate() {
	ctx := context.Background()
	z := suite.newZone("Norte", "5000")
	suite.Require().NoError(suite.repository.Add(ctx, z))
	suite.Require().NoError(z.ChangeRate(kernel.MustMoney("7250.25")))

	suite.Require().NoError(suite.repository.Update(ctx, z))

	got, err := suite.repository.Get(ctx, z.Name())
	suite.Require().NoError(err)
	suite.True(got.Rate().IsEqual(kernel.MustMoney("7250.25")))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestUpdate_Missing_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newZone("Sur", "1"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.MustName("Nowhere"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()
	for _, name := range []string{"Sur", "Centro", "Norte"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newZone(name, "100")))
	}

	zones, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(zones, 3)
	suite.Equal("Centro", zones[0].Name().String())
	suite.Equal("Norte", zones[1].Name().String())
	suite.Equal("Sur", zones[2].Name().String())
}

func (suite *ZoneRepositoryIntegrationTestSuite) newZone(name, rate string) *zone.Zone {
	z, err := zone.NewZone(kernel.MustName(name), kernel.MustMoney(rate))
	suite.Require().NoError(err)
	return z
}

func TestZoneRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ZoneRepositoryIntegrationTestSuite))
}
