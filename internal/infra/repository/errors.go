package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
)

// notFound turns a missing row into the business error code for the entity.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
