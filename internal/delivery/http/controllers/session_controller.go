package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"

	"github.com/google/uuid"
)

// CreateSessionRequest is the request body for POST /events/{eventID}/sessions.
// Required fields and the time window are checked by the scheduling rules, so
// every structural problem is reported in one response.
type CreateSessionRequest struct {
	Title     string    `json:"title" validate:"max=300"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Venue     string    `json:"venue" validate:"max=200"`
	Capacity  int       `json:"capacity" validate:"lte=2147483647"`
	Status    string    `json:"status" validate:"omitempty,oneof=confirmed tentative cancelled"`
	Type      string    `json:"type" validate:"max=50"`
	Speakers  []string  `json:"speakers" validate:"max=50,dive,required"`
	Tags      []string  `json:"tags" validate:"max=50,dive,required,max=64"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	return helpers.ValidateStruct(c)
}

func (c CreateSessionRequest) toDraft() domain.SessionDraft {
	return domain.SessionDraft{
		Title:     c.Title,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Venue:     c.Venue,
		Capacity:  c.Capacity,
		Status:    c.Status,
		Type:      c.Type,
		Speakers:  c.Speakers,
		Tags:      c.Tags,
	}
}

// CheckSessionRequest is the request body for POST /events/{eventID}/sessions/check.
// ExcludeSessionID names the session being edited so it is not compared with itself.
type CheckSessionRequest struct {
	CreateSessionRequest
	ExcludeSessionID string `json:"exclude_session_id" validate:"omitempty,uuid"`
}

// Validate implements Validator.
func (c CheckSessionRequest) Validate() []string {
	return helpers.ValidateStruct(c)
}

// UpdateSessionRequest is the request body for PATCH /events/{eventID}/sessions/{sessionID}.
// All fields optional; omitted fields are unchanged.
type UpdateSessionRequest struct {
	Title     *string    `json:"title" validate:"omitempty,max=300"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Venue     *string    `json:"venue" validate:"omitempty,max=200"`
	Capacity  *int       `json:"capacity" validate:"omitempty,lte=2147483647"`
	Status    *string    `json:"status" validate:"omitempty,oneof=confirmed tentative cancelled"`
	Type      *string    `json:"type" validate:"omitempty,max=50"`
	Speakers  []string   `json:"speakers" validate:"omitempty,max=50,dive,required"`
	Tags      []string   `json:"tags" validate:"omitempty,max=50,dive,required,max=64"`
}

// Validate implements Validator.
func (u UpdateSessionRequest) Validate() []string {
	return helpers.ValidateStruct(u)
}

func (u UpdateSessionRequest) toPatch() domain.SessionPatch {
	patch := domain.SessionPatch{
		Title:     u.Title,
		StartTime: u.StartTime,
		EndTime:   u.EndTime,
		Venue:     u.Venue,
		Capacity:  u.Capacity,
		Speakers:  u.Speakers,
		Tags:      u.Tags,
	}
	if u.Status != nil {
		// oneof above guarantees a known value
		status, _ := domain.ParseStatus(*u.Status)
		patch.Status = &status
	}
	if u.Type != nil {
		t := domain.ParseSessionType(*u.Type)
		patch.Type = &t
	}
	return patch
}

// ScheduleRejection is the error.details payload of a 409 venue_conflict or 422 capacity_exceeded.
type ScheduleRejection struct {
	Conflict *domain.VenueConflictError      `json:"conflict,omitempty"`
	Capacity []*domain.CapacityExceededError `json:"capacity,omitempty"`
}

// SessionSuccessResponse is the success response envelope for single-session endpoints.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionListSuccessResponse is the success response envelope for GET /events/{eventID}/sessions.
type SessionListSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ScheduleReportSuccessResponse is the success response envelope for POST /events/{eventID}/sessions/check.
type ScheduleReportSuccessResponse struct {
	Data  *domain.ScheduleReport `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// TimelineSuccessResponse is the success response envelope for GET /events/{eventID}/timeline.
type TimelineSuccessResponse struct {
	Data  *domain.TimelineView `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSessions godoc
// @Summary List the sessions of an event
// @Description Returns every session of the event, cancelled ones included.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (malformed path ID)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/sessions [get]
func (c *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID")
	if !ok {
		return
	}
	sessions, err := c.Service.ListSessions(r.Context(), ids[0])
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary Schedule a new session
// @Description Validates the session, checks the venue for overlapping sessions and the event capacity ceiling, then stores it.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: venue_conflict or schedule_busy"
// @Failure 422 {object} helpers.APIResponse "error.code: capacity_exceeded"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID")
	if !ok {
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.CreateSession(r.Context(), ids[0], req.toDraft())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// CheckSession godoc
// @Summary Dry-run the scheduling rules
// @Description Runs validation, venue conflict and capacity checks for a prospective session without storing anything. Every conflicting session is listed.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param session body CheckSessionRequest true "Prospective session"
// @Success 200 {object} controllers.ScheduleReportSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/sessions/check [post]
func (c *SessionController) CheckSession(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID")
	if !ok {
		return
	}
	var req CheckSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	report, err := c.Service.CheckSession(r.Context(), ids[0], req.ExcludeSessionID, req.toDraft())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// UpdateSession godoc
// @Summary Edit a session
// @Description Applies a partial update. The merged session is re-checked against every other session of the event; it never conflicts with its own previous version.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Param session body UpdateSessionRequest true "Fields to change"
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: venue_conflict or schedule_busy"
// @Failure 422 {object} helpers.APIResponse "error.code: capacity_exceeded"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/sessions/{sessionID} [patch]
func (c *SessionController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID", "sessionID")
	if !ok {
		return
	}
	var req UpdateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.UpdateSession(r.Context(), ids[0], ids[1], req.toPatch())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// CancelSession godoc
// @Summary Cancel a session
// @Description Marks the session cancelled. Its venue slot and capacity are released immediately.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (malformed path ID)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/sessions/{sessionID}/cancel [post]
func (c *SessionController) CancelSession(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID", "sessionID")
	if !ok {
		return
	}
	session, err := c.Service.CancelSession(r.Context(), ids[0], ids[1])
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (malformed path ID)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/sessions/{sessionID} [delete]
func (c *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID", "sessionID")
	if !ok {
		return
	}
	if err := c.Service.DeleteSession(r.Context(), ids[0], ids[1]); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Timeline godoc
// @Summary Get the event timeline
// @Description Sessions grouped by start time with labels in the event timezone, plus filter facets and the referenced speakers.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.TimelineSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (malformed path ID)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: repository_error"
// @Router /events/{eventID}/timeline [get]
func (c *SessionController) Timeline(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "eventID")
	if !ok {
		return
	}
	view, err := c.Service.Timeline(r.Context(), ids[0])
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// pathIDs reads the named path values in order. Any value that is not a
// canonical 8-4-4-4-12 UUID gets a 400 validation_error naming the parameter,
// and ok is false.
func pathIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = r.PathValue(name)
		if len(ids[i]) != 36 || uuid.Validate(ids[i]) != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, "invalid "+name)
			return nil, false
		}
	}
	return ids, true
}

// writeError maps service errors onto the response envelope. A joined
// rejection is reported under the status of its first rule: venue before capacity.
func (c *SessionController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	var conflict *domain.VenueConflictError
	var capErr *domain.CapacityExceededError
	var repoErr *domain.RepositoryError

	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONErrorDetails(w, http.StatusBadRequest, helpers.ErrCodeValidation, verr.Error(), verr.Problems)
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, err.Error())
	case errors.As(err, &conflict):
		helpers.WriteJSONErrorDetails(w, http.StatusConflict, helpers.ErrCodeVenueConflict, rejectionMessage(err), rejectionDetails(err))
	case errors.As(err, &capErr):
		helpers.WriteJSONErrorDetails(w, http.StatusUnprocessableEntity, helpers.ErrCodeCapacity, rejectionMessage(err), rejectionDetails(err))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event or session not found")
	case errors.Is(err, domain.ErrGuardBusy):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeScheduleBusy, domain.ErrGuardBusy.Error())
	case errors.As(err, &repoErr):
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeRepositoryError, "schedule storage is unavailable, try again")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

func splitJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func rejectionMessage(err error) string {
	parts := splitJoined(err)
	msgs := make([]string, 0, len(parts))
	for _, e := range parts {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func rejectionDetails(err error) ScheduleRejection {
	var details ScheduleRejection
	for _, e := range splitJoined(err) {
		var conflict *domain.VenueConflictError
		var capErr *domain.CapacityExceededError
		switch {
		case errors.As(e, &conflict):
			details.Conflict = conflict
		case errors.As(e, &capErr):
			details.Capacity = append(details.Capacity, capErr)
		}
	}
	return details
}
