package api

import "github.com/eliasgr/API/series"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1500: series.ErrLocationNotFound.Error(),
		1501: "historical data not built yet",
	}

	errorInternalServer = errorJSON(999)

	errorLocationNotFound   = errorJSON(1500)
	errorHistoricalNotReady = errorJSON(1501)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
