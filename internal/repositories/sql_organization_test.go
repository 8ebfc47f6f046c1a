package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/models"
)

func TestOrganizationRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(organizationTestSuite))
}

type organizationTestSuite struct {
	suite.Suite
	writeDB *sql.DB
	mock    sqlmock.Sqlmock
	repo    OrganizationRepository
}

func (suite *organizationTestSuite) SetupTest() {
	var err error

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.repo = NewSQLRepository(suite.writeDB, suite.writeDB, config.Config{}).GetOrganizationRepository()
}

func (suite *organizationTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func organizationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id",
		"name",
		"issuing_balance_cents",
		"markup_basis_points",
		"auto_topup_enabled",
		"auto_topup_threshold_cents",
		"auto_topup_amount_cents",
		"created_at",
		"updated_at",
	})
}

func (suite *organizationTestSuite) TestGetByID() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM "organization"`)).
		WithArgs("org_1").
		WillReturnRows(organizationRows().
			AddRow("org_1", "Acme Agency", int64(50000), int64(2000), true, int64(10000), int64(100000), time.Now(), time.Now()))

	org, err := suite.repo.GetByID(context.Background(), "org_1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.NewMoney(50000), org.IssuingBalanceCents)
	assert.Equal(suite.T(), int64(2000), org.EffectiveMarkupBasisPoints(0))
	assert.False(suite.T(), org.NeedsAutoTopup())
}

func (suite *organizationTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM "organization"`)).
		WithArgs("org_missing").
		WillReturnError(sql.ErrNoRows)

	_, err := suite.repo.GetByID(context.Background(), "org_missing")

	assert.ErrorIs(suite.T(), err, common.ErrOrganizationNotFound)
}

func (suite *organizationTestSuite) TestAddIssuingBalance() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`"issuing_balance_cents" = "issuing_balance_cents" + $1`)).
		WithArgs(int64(10000), "org_1").
		WillReturnRows(sqlmock.NewRows([]string{"issuing_balance_cents"}).AddRow(int64(60000)))

	balance, err := suite.repo.AddIssuingBalance(context.Background(), "org_1", 10000)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.NewMoney(60000), balance)
}

func (suite *organizationTestSuite) TestAddIssuingBalance_RejectsNonPositive() {
	_, err := suite.repo.AddIssuingBalance(context.Background(), "org_1", 0)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidAmount)

	_, err = suite.repo.AddIssuingBalance(context.Background(), "org_1", -5)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidAmount)
}

func (suite *organizationTestSuite) TestDeductIssuingBalance() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`"issuing_balance_cents" >= $1`)).
		WithArgs(int64(10000), "org_1").
		WillReturnRows(sqlmock.NewRows([]string{"issuing_balance_cents"}).AddRow(int64(40000)))

	balance, err := suite.repo.DeductIssuingBalance(context.Background(), "org_1", 10000)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.NewMoney(40000), balance)
}

func (suite *organizationTestSuite) TestDeductIssuingBalance_Insufficient() {
	// guard rejected the row; the follow-up read still finds the org
	suite.mock.ExpectQuery(regexp.QuoteMeta(`"issuing_balance_cents" >= $1`)).
		WithArgs(int64(99999999), "org_1").
		WillReturnError(sql.ErrNoRows)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM "organization"`)).
		WithArgs("org_1").
		WillReturnRows(organizationRows().
			AddRow("org_1", "Acme Agency", int64(100), int64(0), false, int64(0), int64(0), time.Now(), time.Now()))

	_, err := suite.repo.DeductIssuingBalance(context.Background(), "org_1", 99999999)

	assert.ErrorIs(suite.T(), err, common.ErrInsufficientFunds)
}

func (suite *organizationTestSuite) TestDeductIssuingBalance_UnknownOrganization() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`"issuing_balance_cents" >= $1`)).
		WithArgs(int64(100), "org_missing").
		WillReturnError(sql.ErrNoRows)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`FROM "organization"`)).
		WithArgs("org_missing").
		WillReturnError(sql.ErrNoRows)

	_, err := suite.repo.DeductIssuingBalance(context.Background(), "org_missing", 100)

	assert.ErrorIs(suite.T(), err, common.ErrOrganizationNotFound)
}
