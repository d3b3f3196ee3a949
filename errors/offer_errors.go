package errors

import "errors"

var (
	ErrOfferRequestNotFound    = errors.New("offer request not found")
	ErrOfferRequestClosed      = errors.New("offer request is not open")
	ErrInvalidOfferRequestData = errors.New("invalid offer request data")

	ErrOfferCardNotFound    = errors.New("offer card not found")
	ErrInvalidOfferCardData = errors.New("invalid offer card data")
)
