package services

import (
	"errors"

	"inkpress/models"

	"gorm.io/gorm"
)

// notFoundOr maps a missing row to the workflow's NotFound kind and passes
// everything else through unchanged.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
