package postgres

import (
	"context"

	"webshop/internal/domain/repository"
	"webshop/internal/domain/specification"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormRepository implements the generic repository.Repository contract
// for a single entity type. It is parameterized over the domain entity
// E and its persistence model M, with an injected mapper pair so that
// one implementation serves every table.
type gormRepository[E any, M any] struct {
	db       *gorm.DB
	toModel  func(*E) *M
	toEntity func(*M) *E
}

func newGormRepository[E any, M any](db *gorm.DB, toModel func(*E) *M, toEntity func(*M) *E) repository.Repository[E] {
	return &gormRepository[E, M]{
		db:       db,
		toModel:  toModel,
		toEntity: toEntity,
	}
}

// scoped applies every criterion of a specification to a query over M.
func (repo *gormRepository[E, M]) scoped(ctx context.Context, spec specification.Specification) *gorm.DB {
	tx := repo.db.WithContext(ctx).Model(new(M))
	if spec == nil {
		return tx
	}
	for _, criterion := range spec.Criteria() {
		tx = tx.Where(criterion.Expr, criterion.Args...)
	}

	return tx
}

// Get fetches at most one entity matching the specification. A miss
// returns (nil, nil) so that services decide how absence is reported.
func (repo *gormRepository[E, M]) Get(ctx context.Context, spec specification.Specification) (*E, error) {
	var m M
	if err := repo.scoped(ctx, spec).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get entity")
	}

	return repo.toEntity(&m), nil
}

// Exists reports whether any row matches the specification.
func (repo *gormRepository[E, M]) Exists(ctx context.Context, spec specification.Specification) (bool, error) {
	var count int64
	if err := repo.scoped(ctx, spec).Limit(1).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check entity existence")
	}

	return count > 0, nil
}

// GetPage applies the specification, then the paging window. The total
// count reflects the predicate-filtered row count, not the window.
func (repo *gormRepository[E, M]) GetPage(ctx context.Context, pagination repository.Pagination, spec specification.Specification) (*repository.Page[E], error) {
	pagination = pagination.Normalize()

	var total int64
	if err := repo.scoped(ctx, spec).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count entities")
	}

	var models []*M
	if err := repo.scoped(ctx, spec).
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch entity page")
	}

	items := make([]E, 0, len(models))
	for _, m := range models {
		items = append(items, *repo.toEntity(m))
	}

	return &repository.Page[E]{
		Items:      items,
		TotalCount: total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}, nil
}

// Add inserts the entity and copies back the generated identifier and
// timestamps. Constraint violations surface as the repository sentinels
// so services can report conflicts instead of technical errors.
func (repo *gormRepository[E, M]) Add(ctx context.Context, e *E) error {
	m := repo.toModel(e)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatedKey
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrForeignKeyViolated
		}

		return errors.Wrap(err, "failed to add entity")
	}

	*e = *repo.toEntity(m)

	return nil
}

// Update persists mutations made on a previously fetched entity.
func (repo *gormRepository[E, M]) Update(ctx context.Context, e *E) error {
	m := repo.toModel(e)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatedKey
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrForeignKeyViolated
		}

		return errors.Wrap(err, "failed to update entity")
	}

	*e = *repo.toEntity(m)

	return nil
}

// Delete removes the entity with the given id. Zero affected rows is a
// success: deleting an absent id is an idempotent no-op.
func (repo *gormRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete entity")
	}

	return nil
}
