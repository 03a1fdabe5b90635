package api

import (
	"net/http"

	reqdto "hotel-front/internal/handler/dto/request"
	resdto "hotel-front/internal/handler/dto/response"
	"hotel-front/internal/handler/httperr"
	"hotel-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarQueries queries.CalendarQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{
		calendarQueries: calendarQueries,
	}
}

// @Summary Service week calendar
// @Description Slots of the week containing date, grouped by day
// @Tags calendar
// @Security BearerAuth
// @Produce json
// @Param id path int true "Service ID"
// @Param date query string false "Any day of the week (YYYY-MM-DD), defaults to today"
// @Param status query []string false "Keep only these slot statuses"
// @Success 200 {object} resdto.WeekResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /calendar/services/{id}/week [get]
func (h *CalendarHandler) Week(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	serviceID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var q reqdto.WeekQuery
	if !bindQuery(c, &q) {
		return
	}
	statuses, err := q.Statuses()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	view, err := h.calendarQueries.Week(c.Request.Context(), sess, serviceID, q.Date, statuses)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekView(view))
}
