package utils

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

// StatusResponse is the JSON envelope for every non-report API answer.
type StatusResponse struct {
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

func EchoHandleGenericError(echoCtx *echo.Context, err error, status int) error {
	Logger.WithError(err).WithField("status", status).Error("Error handling request")
	return echoCtx.JSON(status, StatusResponse{Status: err.Error()})
}

func EchoHandleInternalError(echoCtx *echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusInternalServerError)
}

// EchoHandleWarning answers a recoverable user error; it is logged at info level only.
func EchoHandleWarning(echoCtx *echo.Context, code string, message string, status int) error {
	Logger.WithField("warning", code).WithField("status", status).Info(message)
	return echoCtx.JSON(status, StatusResponse{Status: message, Warning: code})
}
