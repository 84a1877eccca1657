package response

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func SuccessMessage(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

func ErrorResponseWithDetails(code, message string) Response {
	return Response{
		Success: false,
		Error:   code,
		Message: message,
	}
}
