package queries_test

import (
	"context"
	"testing"
	"time"

	"yardgate/internal/adapters/out/postgres/containerrepo"
	"yardgate/internal/core/application/usecases/queries"
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDirectoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDirectoryQueryHandler
}

func (suite *GetDirectoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&containerrepo.ContainerDTO{}, &containerrepo.HistoryEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDirectoryQueryHandler(db)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDirectoryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE containers CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE container_history").Error
	suite.Require().NoError(err)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDirectoryQuery("", "", "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_DerivesSituationFromState() {
	suite.seedRecord("MSCU0000001", 0, container.Created)
	suite.seedRecord("MSCU0000002", 1, container.Full)
	suite.seedRecord("MSCU0000003", 2, container.Billed)
	suite.seedRecord("MSCU0000004", 3, container.Closed)

	query, err := queries.NewGetDirectoryQuery("", "", "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 4)
	suite.Equal(queries.SituationScheduled, result[0].Situation)
	suite.Equal(queries.SituationInYard, result[1].Situation)
	suite.Equal(queries.SituationInTransit, result[2].Situation)
	suite.Equal(queries.SituationDelivered, result[3].Situation)
	suite.Equal("CHEIO", result[1].CargoStatus)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_SituationFilter() {
	suite.seedRecord("MSCU0000001", 0, container.Created)
	suite.seedRecord("MSCU0000002", 1, container.Full)
	suite.seedRecord("MSCU0000003", 2, container.EmptyAlert)

	query, err := queries.NewGetDirectoryQuery("", queries.SituationInYard, "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("MSCU0000002", result[0].ContainerNumber)
	suite.Equal("MSCU0000003", result[1].ContainerNumber)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_TerminalAndFreeTextFilters() {
	suite.seedRecord("MSCU0000001", 0, container.Full)
	suite.seedRecord("TCLU0000002", 1, container.Full)

	query, err := queries.NewGetDirectoryQuery("terminal-1", "", "", "tclu")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("TCLU0000002", result[0].ContainerNumber)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_CargoStatusFilter() {
	suite.seedRecord("MSCU0000001", 0, container.Full)
	suite.seedRecord("MSCU0000002", 1, container.EmptyAlert)

	query, err := queries.NewGetDirectoryQuery("", "", "VAZIO", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("MSCU0000002", result[0].ContainerNumber)
	suite.Equal("VAZIO", result[0].CargoStatus)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_UnknownSituation_ReturnsError() {
	_, err := queries.NewGetDirectoryQuery("", "PERDIDO", "", "")
	suite.Require().Error(err)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_UnknownCargoStatus_ReturnsError() {
	_, err := queries.NewGetDirectoryQuery("", "", "MEIO", "")
	suite.Require().Error(err)
}

func (suite *GetDirectoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDirectoryQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDirectoryQuery constructor")
}

// seedRecord persists a record advanced to the given state at terminal-1.
func (suite *GetDirectoryQueryHandlerTestSuite) seedRecord(number string, internalID int, until container.State) {
	record, err := container.NewContainer(kernel.NewUUID(), internalID, number)
	suite.Require().NoError(err)
	suite.Require().NoError(record.UpdateDetails("ACME Imports", "MSC", "BK-1001", "terminal-1"))

	// Empty containers fork to EmptyAlert at placement; everything else
	// advances along the CHEIO path.
	cargo := container.Cheio
	if until == container.EmptyAlert {
		cargo = container.Vazio
	}

	steps := []func() error{
		func() error { return record.RegisterGateEntry("gate-kiosk", cargo) },
		func() error { return record.CompleteChecklist("inspector.silva") },
		func() error { return record.CompleteEIR("INTACTO", "SL-991", "inspector.silva") },
		func() error { return record.RegisterBilling("billing.desk") },
		func() error { return record.RegisterGateExit("gate-kiosk") },
	}
	for _, step := range steps {
		if record.State() == until {
			break
		}
		suite.Require().NoError(step())
	}
	suite.Require().Equal(until, record.State())

	repo := containerrepo.NewGormContainerRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), record))
}

// noopTracker implements the repository's aggregate tracker for tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func TestGetDirectoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDirectoryQueryHandlerTestSuite))
}
