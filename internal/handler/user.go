package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sectionconnection/users-api/internal/handler/dto"
	"github.com/sectionconnection/users-api/internal/metrics"
	"github.com/sectionconnection/users-api/internal/middleware"
	"github.com/sectionconnection/users-api/internal/model"
	"github.com/sectionconnection/users-api/internal/service"
)

// errTrailingData marks a body with content after the JSON object.
var errTrailingData = errors.New("unexpected data after JSON body")

// UserService is the business logic the user handler depends on.
type UserService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, input service.CreateUserInput) (*model.User, error)
}

// UserHandler handles HTTP requests for the users resource.
type UserHandler struct {
	svc    UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET on the users path.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, r, metrics.OpListUsers, err, MsgRetrieveFailed)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto.Success(dto.ToUserListResponse(users)))
}

// Create handles POST on the users path.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, h.logger, http.StatusRequestEntityTooLarge, dto.Error(MsgBodyTooLarge))
			return
		}

		// An unreadable body carries no usable fields.
		h.logger.Warn("create_user_invalid_body",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeJSON(w, h.logger, http.StatusBadRequest, dto.Error(MsgMissingFields))
		return
	}

	user, err := h.svc.CreateUser(r.Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.handleServiceError(w, r, metrics.OpCreateUser, err, MsgAddFailed)
		return
	}

	h.logger.Info("user_created",
		"request_id", middleware.GetRequestID(r.Context()),
		"user_id", user.UserID,
	)

	writeJSON(w, h.logger, http.StatusCreated, dto.SuccessWithMessage(MsgUserAdded, dto.ToUserResponse(user)))
}

// handleServiceError maps service errors to HTTP responses.
// queryMsg is the generic message used when the query itself failed.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error, queryMsg string) {
	requestID := middleware.GetRequestID(r.Context())

	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeJSON(w, h.logger, http.StatusBadRequest, dto.Error(MsgMissingFields))
	case errors.Is(err, service.ErrStoreUnavailable):
		h.logger.Error("database_connection_failed", "op", op, "request_id", requestID, "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, dto.Error(MsgConnectionFailed))
	default:
		h.logger.Error("database_query_failed", "op", op, "request_id", requestID, "error", err)
		writeJSON(w, h.logger, http.StatusInternalServerError, dto.Error(queryMsg))
	}
}

// decodeJSON decodes exactly one JSON value from body into dst.
// Anything but whitespace after the value is an error.
func decodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", errTrailingData, err)
	default:
		return errTrailingData
	}
}
