// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: the repositories it
// hands out are bound to the same database transaction, so a container's
// state column, its history ledger rows, its slot binding, and the gate
// ledger entry commit or roll back together.
package postgres

import (
	"context"

	"yardgate/internal/adapters/out/postgres/containerrepo"
	"yardgate/internal/adapters/out/postgres/gatelogrepo"
	"yardgate/internal/adapters/out/postgres/schedulerepo"
	"yardgate/internal/adapters/out/postgres/yardrepo"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for one business operation. Repositories obtained from it execute
// within the current transaction when one is active, otherwise against the
// main connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ContainerRepository returns a container repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ContainerRepository() ports.ContainerRepository {
	return containerrepo.NewGormContainerRepository(uow.conn(), uow)
}

// ScheduleRepository returns a schedule repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	return schedulerepo.NewGormScheduleRepository(uow.conn(), uow)
}

// GateLogRepository returns a gate ledger repository bound to the current
// transaction.
func (uow *GormUnitOfWork) GateLogRepository() ports.GateLogRepository {
	return gatelogrepo.NewGormGateLogRepository(uow.conn(), uow)
}

// YardSlotRepository returns a yard slot repository bound to the current
// transaction.
func (uow *GormUnitOfWork) YardSlotRepository() ports.YardSlotRepository {
	return yardrepo.NewGormYardSlotRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
