//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shoot-planner-backend/internal/database/models"
	"shoot-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CrewMemberRepositoryTestSuite tests the CrewMemberRepository
type CrewMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CrewMemberRepository
	production    *models.Production
	factory       *testutils.CrewMemberFactory
}

// SetupSuite runs before all tests in the suite
func (suite *CrewMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCrewMemberRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewCrewMemberFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *CrewMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a parent production for each test
func (suite *CrewMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.production = testutils.NewProductionFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.production).Error)
}

// TearDownTest runs after each test
func (suite *CrewMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a crew member
func (suite *CrewMemberRepositoryTestSuite) TestCreate() {
	member := suite.factory.WithProduction(suite.production.ID)

	err := suite.repo.Create(member)

	suite.NoError(err)

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("Test Crew Member", found.Name)
	suite.Equal("Photographer", found.Role)
	suite.Equal("06:45", found.CallTime)
}

// TestGetByProductionIDOrdersByCreation tests roster order
func (suite *CrewMemberRepositoryTestSuite) TestGetByProductionIDOrdersByCreation() {
	first := suite.factory.WithProduction(suite.production.ID)
	first.Name = "Added First"
	first.CreatedAt = time.Now().Add(-2 * time.Hour)
	suite.NoError(suite.repo.Create(first))

	second := suite.factory.WithProduction(suite.production.ID)
	second.Name = "Added Second"
	second.CreatedAt = time.Now().Add(-1 * time.Hour)
	suite.NoError(suite.repo.Create(second))

	members, err := suite.repo.GetByProductionID(suite.production.ID)

	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal("Added First", members[0].Name)
	suite.Equal("Added Second", members[1].Name)
}

// TestGetByProductionIDScopedToProduction tests isolation between productions
func (suite *CrewMemberRepositoryTestSuite) TestGetByProductionIDScopedToProduction() {
	member := suite.factory.WithProduction(suite.production.ID)
	suite.NoError(suite.repo.Create(member))

	other := testutils.NewProductionFactory().WithName("Other Shoot")
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	otherMember := suite.factory.WithProduction(other.ID)
	suite.NoError(suite.repo.Create(otherMember))

	members, err := suite.repo.GetByProductionID(suite.production.ID)

	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal(member.ID, members[0].ID)
}

// TestUpdate tests updating a crew member
func (suite *CrewMemberRepositoryTestSuite) TestUpdate() {
	member := suite.factory.WithProduction(suite.production.ID)
	suite.NoError(suite.repo.Create(member))

	member.Role = "First Assistant"
	member.CallTime = "07:15"
	err := suite.repo.Update(member)

	suite.NoError(err)

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("First Assistant", found.Role)
	suite.Equal("07:15", found.CallTime)
}

// TestDelete tests deleting a crew member
func (suite *CrewMemberRepositoryTestSuite) TestDelete() {
	member := suite.factory.WithProduction(suite.production.ID)
	suite.NoError(suite.repo.Create(member))

	err := suite.repo.Delete(member.ID)

	suite.NoError(err)

	found, err := suite.repo.GetByID(member.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestDeleteCascadesWithProduction tests the FK cascade from productions
func (suite *CrewMemberRepositoryTestSuite) TestDeleteCascadesWithProduction() {
	member := suite.factory.WithProduction(suite.production.ID)
	suite.NoError(suite.repo.Create(member))

	err := suite.baseTestSuite.DB.Delete(&models.Production{}, "id = ?", suite.production.ID).Error
	suite.NoError(err)

	found, err := suite.repo.GetByID(member.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// Run the test suite
func TestCrewMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CrewMemberRepositoryTestSuite))
}
