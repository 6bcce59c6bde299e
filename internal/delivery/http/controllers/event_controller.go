package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventsapi/internal/delivery/http/helpers"
	"eventsapi/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	UseCase domain.EventUseCase
}

func NewEventController(logger *slog.Logger, uc domain.EventUseCase) *EventController {
	return &EventController{
		Logger:  logger,
		UseCase: uc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event. The id is assigned by the server.
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.EventCreate true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.APIError "msg: validation message"
// @Failure 500 {object} helpers.APIError "code: not_created"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req domain.EventCreate
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	event, err := c.UseCase.CreateNewEvent(r.Context(), req)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.UseCase.GetAllEvents(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	event, err := c.UseCase.GetEventByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update event fields
// @Description Merges the given fields into the event. Omitted fields are unchanged. PUT and PATCH behave the same.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body domain.EventUpdate true "Fields to update (at least one)"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError "msg: validation message"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: not_updated"
// @Router /events/{id} [put]
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req domain.EventUpdate
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	event, err := c.UseCase.UpdateEvent(r.Context(), id, req)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and returns it as it was right before deletion.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: not_deleted"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	event, err := c.UseCase.DeleteEvent(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// writeError maps the error taxonomy to HTTP. A missing record wins over the
// operation kind so update and delete on unknown ids answer 404.
func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrNotCreated):
		c.logFailure(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeNotCreated, "event not created")
	case errors.Is(err, domain.ErrNotUpdated):
		c.logFailure(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeNotUpdated, "event not updated")
	case errors.Is(err, domain.ErrNotDeleted):
		c.logFailure(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeNotDeleted, "event not deleted")
	default:
		c.logFailure(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

func (c *EventController) logFailure(r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}
