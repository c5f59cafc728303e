package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 1
	RateLimitedErrorCode    = 429

	DateFormat     = time.DateOnly
	DateTimeFormat = time.RFC3339
)
