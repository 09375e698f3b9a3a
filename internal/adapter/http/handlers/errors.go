package handlers

import (
	"errors"
	"net/http"

	"rxquote/internal/usecase"
	"rxquote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errNoIdentity     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapError translates usecase errors into the HTTP envelope. Client errors carry the usecase
// message; anything unclassified becomes a generic 500.
func mapError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHORIZED", err.Error(), err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, log *zap.Logger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
