package common

import (
	"errors"

	"github.com/amirasaad/causehive/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors, walking the
// error chain. Unmapped errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrValidation
	}
	return err
}

// WrapError runs op and maps its error.
//
//	err := common.WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(m).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// NotFound maps a missing record to the entity's own sentinel and every
// other error through MapGormErrorToDomain.
func NotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return MapGormErrorToDomain(err)
}

// Affected returns notFound when an update or delete touched no rows.
func Affected(tx *gorm.DB, notFound error) error {
	if tx.Error != nil {
		return MapGormErrorToDomain(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return notFound
	}
	return nil
}
