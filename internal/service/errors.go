package service

import (
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// notFoundOr names the missing resource for pgx.ErrNoRows and passes other
// errors through.
func notFoundOr(err error, resource string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return err
}
