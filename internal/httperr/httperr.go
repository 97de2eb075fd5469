package httperr

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Code identifies an authentication/authorization failure class.
// The set is closed; clients switch on these values, so keep them stable.
type Code string

const (
	CodeNotAuthenticated   Code = "NOT_AUTHENTICATED"
	CodeMissingToken       Code = "MISSING_TOKEN"
	CodeInvalidUserToken   Code = "INVALID_USER_TOKEN"
	CodeInvalidTenantToken Code = "INVALID_TENANT_TOKEN"
	CodeTenantMismatch     Code = "TENANT_MISMATCH"
	CodeTenantAccessDenied Code = "TENANT_ACCESS_DENIED"
	CodeInvalidRequest     Code = "INVALID_REQUEST"
	CodeUserNotFound       Code = "USER_NOT_FOUND"
	CodeTenantNotFound     Code = "TENANT_NOT_FOUND"
	CodeRoleNotFound       Code = "ROLE_NOT_FOUND"
	CodeDataNotFound       Code = "DATA_NOT_FOUND"
	CodeDatabaseError      Code = "DATABASE_ERROR"
)

// Envelope is the single error shape every failure is rendered through.
// request_id is generated fresh per failure and timestamp reflects formatting
// time, not anything token-related.
type Envelope struct {
	Error Body `json:"error"`
}

type Body struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// New builds the envelope for a failure.
func New(code Code, message string) Envelope {
	return Envelope{Error: Body{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: uuid.NewString(),
	}}
}

// Abort renders the envelope and stops the gin handler chain.
func Abort(c *gin.Context, status int, code Code, message string) {
	c.AbortWithStatusJSON(status, New(code, message))
}

// Convenience helpers for the common mappings.

func AbortUnauthorized(c *gin.Context, code Code, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Abort(c, http.StatusUnauthorized, code, message)
}

func AbortForbidden(c *gin.Context, code Code, message string) {
	Abort(c, http.StatusForbidden, code, message)
}

func AbortNotFound(c *gin.Context, code Code, message string) {
	Abort(c, http.StatusNotFound, code, message)
}

func AbortBadRequest(c *gin.Context, message string) {
	Abort(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

func AbortInternal(c *gin.Context, code Code, message string) {
	Abort(c, http.StatusInternalServerError, code, message)
}
