//go:build integration
// +build integration

package repository

import (
	"testing"

	"shoot-planner-backend/internal/database/models"
	"shoot-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScheduleTemplateRepositoryTestSuite tests the ScheduleTemplateRepository
type ScheduleTemplateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScheduleTemplateRepository
	factory       *testutils.ScheduleTemplateFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ScheduleTemplateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScheduleTemplateRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewScheduleTemplateFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScheduleTemplateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScheduleTemplateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScheduleTemplateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTemplate inserts a template with the given name
func (suite *ScheduleTemplateRepositoryTestSuite) createTemplate(name string) *models.ScheduleTemplate {
	template := suite.factory.Create()
	template.Name = name
	suite.NoError(suite.baseTestSuite.DB.Create(template).Error)
	return template
}

// TestGetAll tests listing templates in name order
func (suite *ScheduleTemplateRepositoryTestSuite) TestGetAll() {
	suite.createTemplate("Lookbook Day")
	suite.createTemplate("Campaign Day")
	suite.createTemplate("Editorial Day")

	templates, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(templates, 3)
	suite.Equal("Campaign Day", templates[0].Name)
	suite.Equal("Editorial Day", templates[1].Name)
	suite.Equal("Lookbook Day", templates[2].Name)
}

// TestGetAllPagination tests limit and offset
func (suite *ScheduleTemplateRepositoryTestSuite) TestGetAllPagination() {
	suite.createTemplate("Template A")
	suite.createTemplate("Template B")
	suite.createTemplate("Template C")

	templates, total, err := suite.repo.GetAll(2, 2)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(templates, 1)
	suite.Equal("Template C", templates[0].Name)
}

// TestGetByID tests fetching a template without blueprints
func (suite *ScheduleTemplateRepositoryTestSuite) TestGetByID() {
	template := suite.createTemplate("Editorial Day")

	found, err := suite.repo.GetByID(template.ID)

	suite.NoError(err)
	suite.Equal(template.ID, found.ID)
	suite.Equal("Editorial Day", found.Name)
	suite.Empty(found.Blueprints)
}

// TestGetByIDNotFound tests fetching a non-existent template
func (suite *ScheduleTemplateRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestGetWithBlueprintsOrdersByPosition tests blueprint ordering
func (suite *ScheduleTemplateRepositoryTestSuite) TestGetWithBlueprintsOrdersByPosition() {
	// Insertion order disagrees with position; position must win
	template := suite.factory.WithBlueprints("First look", "Crew call", "Hair and makeup")
	template.Blueprints[0].Position = 2
	template.Blueprints[1].Position = 0
	template.Blueprints[2].Position = 1
	suite.NoError(suite.baseTestSuite.DB.Create(template).Error)

	found, err := suite.repo.GetWithBlueprints(template.ID)

	suite.NoError(err)
	suite.Len(found.Blueprints, 3)
	suite.Equal("Crew call", found.Blueprints[0].Title)
	suite.Equal("Hair and makeup", found.Blueprints[1].Title)
	suite.Equal("First look", found.Blueprints[2].Title)
}

// Run the test suite
func TestScheduleTemplateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTemplateRepositoryTestSuite))
}
