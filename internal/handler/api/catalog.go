package api

import (
	"net/http"

	reqdto "hotel-front/internal/handler/dto/request"
	resdto "hotel-front/internal/handler/dto/response"
	"hotel-front/internal/handler/httperr"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Available rooms
// @Description Rooms free for the whole stay and large enough for the party
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *CatalogHandler) AvailableRooms(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var q reqdto.AvailableRoomsQuery
	if !bindQuery(c, &q) {
		return
	}

	rooms, err := h.catalogQueries.AvailableRooms(c.Request.Context(), sess, q.CheckIn, q.CheckOut, q.Guests)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRooms(rooms)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary List rooms
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 403 {object} httperr.Response
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	rooms, err := h.catalogQueries.ListRooms(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRooms(rooms)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Create room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := req.ToUpstream()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	created, err := h.catalogCommands.CreateRoom(c.Request.Context(), sess, room)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRoom(created)
	renderJSON(c, http.StatusCreated, body, err)
}

// @Summary Update room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param number path string true "Room number"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{number} [put]
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := req.ToUpstream()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	updated, err := h.catalogCommands.UpdateRoom(c.Request.Context(), sess, c.Param("number"), room)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRoom(updated)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Delete room
// @Tags rooms
// @Security BearerAuth
// @Param number path string true "Room number"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{number} [delete]
func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	if err := h.catalogCommands.DeleteRoom(c.Request.Context(), sess, c.Param("number")); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List room standards
// @Tags room-standards
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.RoomStandardResponse
// @Router /room-standards [get]
func (h *CatalogHandler) ListRoomStandards(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	standards, err := h.catalogQueries.ListRoomStandards(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRoomStandards(standards)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Create room standard
// @Tags room-standards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RoomStandardRequest true "Room standard"
// @Success 201 {object} resdto.RoomStandardResponse
// @Failure 400 {object} httperr.Response
// @Router /room-standards [post]
func (h *CatalogHandler) CreateRoomStandard(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.RoomStandardRequest
	if !bindJSON(c, &req) {
		return
	}
	standard, err := req.ToUpstream()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	created, err := h.catalogCommands.CreateRoomStandard(c.Request.Context(), sess, standard)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRoomStandard(created)
	renderJSON(c, http.StatusCreated, body, err)
}

// @Summary Update room standard
// @Tags room-standards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Room standard ID"
// @Param request body reqdto.RoomStandardRequest true "Room standard"
// @Success 200 {object} resdto.RoomStandardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-standards/{id} [put]
func (h *CatalogHandler) UpdateRoomStandard(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.RoomStandardRequest
	if !bindJSON(c, &req) {
		return
	}
	standard, err := req.ToUpstream()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	updated, err := h.catalogCommands.UpdateRoomStandard(c.Request.Context(), sess, id, standard)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromRoomStandard(updated)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Delete room standard
// @Tags room-standards
// @Security BearerAuth
// @Param id path int true "Room standard ID"
// @Success 204 "No Content"
// @Router /room-standards/{id} [delete]
func (h *CatalogHandler) DeleteRoomStandard(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogCommands.DeleteRoomStandard(c.Request.Context(), sess, id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List services
// @Tags services
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	services, err := h.catalogQueries.ListServices(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromServices(services)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Create service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	service, err := req.ToUpstream()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	created, err := h.catalogCommands.CreateService(c.Request.Context(), sess, service)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromService(created)
	renderJSON(c, http.StatusCreated, body, err)
}

// @Summary Update service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	service, err := req.ToUpstream()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	updated, err := h.catalogCommands.UpdateService(c.Request.Context(), sess, id, service)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromService(updated)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 204 "No Content"
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogCommands.DeleteService(c.Request.Context(), sess, id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List guests
// @Tags guests
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.GuestResponse
// @Failure 403 {object} httperr.Response
// @Router /guests [get]
func (h *CatalogHandler) ListGuests(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	guests, err := h.catalogQueries.ListGuests(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromGuests(guests)
	renderJSON(c, http.StatusOK, body, err)
}

// @Summary Guest bill
// @Description Bill elements with per-kind subtotals and the grand total
// @Tags bills
// @Security BearerAuth
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} resdto.BillResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bills/{id} [get]
func (h *CatalogHandler) Bill(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.catalogQueries.Bill(c.Request.Context(), sess, id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBill(b))
}
