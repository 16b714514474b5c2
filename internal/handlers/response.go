package handlers

import (
  "errors"
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/als8921/InfoU-backend/internal/apierr"
)

var (
  errInvalidAuthorization = errors.New("invalid authorization header")
  errAccessForbidden      = errors.New("access forbidden")
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

// RespondServiceError maps service errors onto the envelope using the
// status and code carried by apierr values.
func RespondServiceError(c *gin.Context, err error) {
  RespondError(c, apierr.Status(err), apierr.Code(err), err)
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// CurrentUserID resolves the caller's identity from the Authorization
// header. Real authentication is out of scope; any bearer token maps to
// the placeholder identity.
func CurrentUserID(c *gin.Context) string {
  auth := c.GetHeader("Authorization")
  if strings.HasPrefix(auth, "Bearer ") {
    return "dummy_user_id"
  }
  return ""
}
