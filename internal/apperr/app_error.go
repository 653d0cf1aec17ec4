package apperr

import "github.com/tuanvumaihuynh/brewery/pkg/zerror"

const (
	ValidationErrorCode       = "VALIDATION_FAILED"
	InvalidIDErrorCode        = "INVALID_ID"
	CustomerNotFoundErrorCode = "CUSTOMER_NOT_FOUND"
	BeerNotFoundErrorCode     = "BEER_NOT_FOUND"
	UnauthorizedErrorCode     = "UNAUTHORIZED"
	NotReadyErrorCode         = "NOT_READY"
)

var (
	ValidationErr       = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	InvalidIDErr        = zerror.NewBadRequest(InvalidIDErrorCode, "id must not be blank")
	CustomerNotFoundErr = zerror.NewNotFound(CustomerNotFoundErrorCode, "customer not found")
	BeerNotFoundErr     = zerror.NewNotFound(BeerNotFoundErrorCode, "beer not found")
	UnauthorizedErr     = zerror.NewUnauthorized(UnauthorizedErrorCode, "missing or invalid bearer token")
	NotReadyErr         = zerror.NewServiceUnavailable(NotReadyErrorCode, "service is not ready")
)
