package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/internal/model"
	"github.com/itsDrac/bidhub/pkg/config"
	valid "github.com/itsDrac/bidhub/pkg/validator"
)

var validate = valid.GetValidator()

var requestIDKey = "X-Request-ID"

func writeJson(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to write json response", "status", status, "error", err)
	}
}

func GetUserClaims(r *http.Request) *config.UserClaims {
	claims, ok := r.Context().Value(config.UserClaimKey).(*config.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// requestID prefers the caller's header, then the id set by the router
// middleware, and generates one otherwise.
func requestID(w http.ResponseWriter, r *http.Request) string {
	reqID := r.Header.Get(requestIDKey)
	if reqID == "" {
		reqID = middleware.GetReqID(r.Context())
	}
	if reqID == "" {
		reqID = uuid.NewString()
	}
	// This ensures the client gets the ID whether they sent it or we created it.
	w.Header().Set(requestIDKey, reqID)
	return reqID
}

func RespondSuccessJSON[T any](w http.ResponseWriter, r *http.Request, status int, message string, data T) {
	payload := model.APIResponse[T]{
		Success: true,
		Status:  "success",
		Message: message,
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID(w, r),
		},
		Data: data,
	}
	writeJson(w, status, payload)
}

func RespondErrorJSON(w http.ResponseWriter, r *http.Request, status int, code string, message string, details []model.ErrorDetails) {
	payload := model.APIResponse[any]{
		Success: false,
		Status:  "error",
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID(w, r),
		},
		Error: &model.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJson(w, status, payload)
}

// decodeBody reads a JSON body into dst and validates it, answering the
// request itself on failure. An empty body is accepted when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "Invalid JSON format", nil)
			return false
		}
	}

	if err := validate.Struct(dst); err != nil {
		var details []model.ErrorDetails
		var validErrs validator.ValidationErrors
		if errors.As(err, &validErrs) {
			for _, vErr := range validErrs {
				details = append(details, model.ErrorDetails{
					Field: vErr.Field(),
					Issue: fmt.Sprintf("failed on tag '%s' with param '%s'", vErr.Tag(), vErr.Param()),
				})
			}
		}
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidRequest.Error(), "Input validation failed", details)
		return false
	}
	return true
}

// uuidParam reads a UUID path parameter, answering the request on failure.
func uuidParam(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), key+" is required", nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidParam.Error(), key+" must be a valid UUID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated caller, answering 401 when missing.
func currentUser(w http.ResponseWriter, r *http.Request) (*config.UserClaims, bool) {
	claims := GetUserClaims(r)
	if claims == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user claims not found in context", nil)
		return nil, false
	}
	return claims, true
}

// Health godoc
//
//	@Summary	Health check
//	@Tags		Common
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"message": "ok",
		"time":    time.Now().Format(time.RFC3339),
	}
	RespondSuccessJSON(w, r, http.StatusOK, "service is healthy", resp)
}
