package response

const (
	CodeInvalidRequest = "invalid_request"
	CodeValidation     = "validation_error"
	CodeNotFound       = "not_found"
	CodeAuthFailed     = "authentication_failed"
	CodeTokenMissing   = "token_missing"
	CodeTokenInvalid   = "token_invalid"
	CodeTokenExpired   = "token_expired"
	CodeForbidden      = "forbidden"
	CodeInternal       = "internal_error"
)

var (
	ErrInvalidRequestFormat = Response{
		Error:   CodeInvalidRequest,
		Message: "Invalid request format",
	}

	ErrAuthenticationFailed = Response{
		Error:   CodeAuthFailed,
		Message: "Invalid email or password",
	}

	ErrInternal = Response{
		Error:   CodeInternal,
		Message: "Internal server error",
	}

	ErrForbidden = Response{
		Error:   CodeForbidden,
		Message: "Admin access required",
	}
)
