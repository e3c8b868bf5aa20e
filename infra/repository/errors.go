package repository

import (
	"errors"

	"github.com/amirasaad/txrecords/pkg/domain"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors. notFound is
// returned in place of gorm.ErrRecordNotFound so each repository can report
// its own coded error. Unknown errors are returned unchanged.
func MapGormErrorToDomain(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	}
	return err
}

// MapMongoErrorToDomain is the document store counterpart of
// MapGormErrorToDomain.
func MapMongoErrorToDomain(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrAlreadyExists
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Delete(&m).Error
//	}, transaction.ErrTransactionNotFound)
func WrapError(op func() error, notFound error) error {
	return MapGormErrorToDomain(op(), notFound)
}
