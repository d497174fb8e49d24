package http

import (
	"net/http"

	"github.com/hrconsole/hr-console-backend/internal/domain/calendar"
	"github.com/hrconsole/hr-console-backend/internal/handler/http/response"
)

type CalendarHandler interface {
	Feed(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

// Feed implements CalendarHandler.
func (h *CalendarHandlerImpl) Feed(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	entries, err := h.calendarService.Feed(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}
