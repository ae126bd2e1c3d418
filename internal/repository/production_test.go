//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shoot-planner-backend/internal/database/models"
	"shoot-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProductionRepositoryTestSuite tests the ProductionRepository
type ProductionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProductionRepository
	factory       *testutils.ProductionFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ProductionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProductionRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewProductionFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProductionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProductionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProductionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a production
func (suite *ProductionRepositoryTestSuite) TestCreate() {
	production := suite.factory.Create()

	err := suite.repo.Create(production)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, production.ID)

	// Verify it was persisted
	var found models.Production
	err = suite.baseTestSuite.DB.First(&found, "id = ?", production.ID).Error
	suite.NoError(err)
	suite.Equal("Test Editorial Shoot", found.Name)
	suite.Equal("07:00", found.CallTime)
	suite.Equal("19:00", found.WrapTime)
}

// TestCreateMinimal tests that only the name is required
func (suite *ProductionRepositoryTestSuite) TestCreateMinimal() {
	production := suite.factory.Minimal()

	err := suite.repo.Create(production)

	suite.NoError(err)

	found, err := suite.repo.GetByID(production.ID)
	suite.NoError(err)
	suite.Equal("Bare Production", found.Name)
	suite.Nil(found.ShootDate)
	suite.Empty(found.CallTime)
}

// TestGetByID tests retrieving a production by ID
func (suite *ProductionRepositoryTestSuite) TestGetByID() {
	production := suite.factory.WithName("Autumn Editorial")
	suite.NoError(suite.repo.Create(production))

	found, err := suite.repo.GetByID(production.ID)

	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal(production.ID, found.ID)
	suite.Equal("Autumn Editorial", found.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent production
func (suite *ProductionRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestGetAll tests pagination and newest-first ordering
func (suite *ProductionRepositoryTestSuite) TestGetAll() {
	older := suite.factory.WithName("Older Shoot")
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	suite.NoError(suite.repo.Create(older))

	newer := suite.factory.WithName("Newer Shoot")
	newer.CreatedAt = time.Now().Add(-1 * time.Hour)
	suite.NoError(suite.repo.Create(newer))

	productions, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(productions, 2)
	suite.Equal("Newer Shoot", productions[0].Name)
	suite.Equal("Older Shoot", productions[1].Name)
}

// TestGetAllPagination tests limit and offset
func (suite *ProductionRepositoryTestSuite) TestGetAllPagination() {
	for _, name := range []string{"Shoot A", "Shoot B", "Shoot C"} {
		suite.NoError(suite.repo.Create(suite.factory.WithName(name)))
	}

	page1, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page1, 2)

	page2, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page2, 1)
}

// TestUpdate tests updating a production
func (suite *ProductionRepositoryTestSuite) TestUpdate() {
	production := suite.factory.Create()
	suite.NoError(suite.repo.Create(production))

	production.Name = "Renamed Shoot"
	production.Location = "Rooftop"
	err := suite.repo.Update(production)

	suite.NoError(err)

	found, err := suite.repo.GetByID(production.ID)
	suite.NoError(err)
	suite.Equal("Renamed Shoot", found.Name)
	suite.Equal("Rooftop", found.Location)
}

// TestGetWithFullDetails tests preloading schedule, looks and crew
func (suite *ProductionRepositoryTestSuite) TestGetWithFullDetails() {
	production := suite.factory.Create()
	suite.NoError(suite.repo.Create(production))

	itemFactory := testutils.NewScheduleItemFactory()
	late := itemFactory.WithProduction(production.ID)
	late.StartTime = "14:00"
	suite.NoError(suite.baseTestSuite.DB.Create(late).Error)
	early := itemFactory.WithProduction(production.ID)
	early.StartTime = "08:00"
	suite.NoError(suite.baseTestSuite.DB.Create(early).Error)

	lookFactory := testutils.NewLookFactory()
	second := lookFactory.WithSequence(production.ID, 1)
	suite.NoError(suite.baseTestSuite.DB.Create(second).Error)
	first := lookFactory.WithSequence(production.ID, 0)
	suite.NoError(suite.baseTestSuite.DB.Create(first).Error)

	crewFactory := testutils.NewCrewMemberFactory()
	photographer := crewFactory.WithProduction(production.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(photographer).Error)
	stylist := crewFactory.WithProduction(production.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(stylist).Error)

	found, err := suite.repo.GetWithFullDetails(production.ID)

	suite.NoError(err)
	suite.Len(found.ScheduleItems, 2)
	suite.Equal("08:00", found.ScheduleItems[0].StartTime)
	suite.Equal("14:00", found.ScheduleItems[1].StartTime)
	suite.Len(found.Looks, 2)
	suite.Equal(first.ID, found.Looks[0].ID)
	suite.Equal(second.ID, found.Looks[1].ID)
	suite.Len(found.CrewMembers, 2)
	suite.Equal(photographer.ID, found.CrewMembers[0].ID)
	suite.Equal(stylist.ID, found.CrewMembers[1].ID)
}

// Run the test suite
func TestProductionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionRepositoryTestSuite))
}
