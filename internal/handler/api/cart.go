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

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

func addedStatus(added bool) int {
	if added {
		return http.StatusCreated
	}
	return http.StatusOK
}

// @Summary Get reservation cart
// @Tags carts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ReservationCartResponse
// @Router /carts/reservations [get]
func (h *CartHandler) GetReservations(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	view, err := h.cartQueries.Reservations(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationCartView(view))
}

// @Summary Add room to reservation cart
// @Description Returns 201 when added, 200 with added=false when the same room and dates are already in the cart
// @Tags carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationItemRequest true "Cart item"
// @Success 200 {object} resdto.ReservationCartResponse
// @Success 201 {object} resdto.ReservationCartResponse
// @Failure 400 {object} httperr.Response
// @Router /carts/reservations [post]
func (h *CartHandler) AddReservation(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ReservationItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.cartCommands.AddReservation(c.Request.Context(), sess, item)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(addedStatus(result.Added), resdto.FromReservationCartResult(result, true))
}

// @Summary Replace reservation cart
// @Tags carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationCartRequest true "Cart contents"
// @Success 200 {object} resdto.ReservationCartResponse
// @Failure 400 {object} httperr.Response
// @Router /carts/reservations [put]
func (h *CartHandler) SetReservations(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ReservationCartRequest
	if !bindJSON(c, &req) {
		return
	}
	items, err := req.ToDomain()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.cartCommands.SetReservations(c.Request.Context(), sess, items)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationCartResult(result, false))
}

// @Summary Remove room from reservation cart
// @Tags carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationItemRequest true "Cart item"
// @Success 200 {object} resdto.ReservationCartResponse
// @Router /carts/reservations [delete]
func (h *CartHandler) RemoveReservation(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ReservationItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := h.cartCommands.RemoveReservation(c.Request.Context(), sess, item)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationCartResult(result, false))
}

// @Summary Clear reservation cart
// @Tags carts
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /carts/reservations/all [delete]
func (h *CartHandler) ClearReservations(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	if err := h.cartCommands.ClearReservations(c.Request.Context(), sess); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get service cart
// @Tags carts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ServiceCartResponse
// @Router /carts/services [get]
func (h *CartHandler) GetServices(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	view, err := h.cartQueries.Services(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceCartView(view))
}

// @Summary Add service slot to cart
// @Tags carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceItemRequest true "Cart item"
// @Success 200 {object} resdto.ServiceCartResponse
// @Success 201 {object} resdto.ServiceCartResponse
// @Failure 400 {object} httperr.Response
// @Router /carts/services [post]
func (h *CartHandler) AddService(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ServiceItemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cartCommands.AddService(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(addedStatus(result.Added), resdto.FromServiceCartResult(result, true))
}

// @Summary Replace service cart
// @Tags carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceCartRequest true "Cart contents"
// @Success 200 {object} resdto.ServiceCartResponse
// @Failure 400 {object} httperr.Response
// @Router /carts/services [put]
func (h *CartHandler) SetServices(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ServiceCartRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cartCommands.SetServices(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceCartResult(result, false))
}

// @Summary Remove service slot from cart
// @Tags carts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceItemRequest true "Cart item"
// @Success 200 {object} resdto.ServiceCartResponse
// @Router /carts/services [delete]
func (h *CartHandler) RemoveService(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	var req reqdto.ServiceItemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cartCommands.RemoveService(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceCartResult(result, false))
}

// @Summary Clear service cart
// @Tags carts
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /carts/services/all [delete]
func (h *CartHandler) ClearServices(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	if err := h.cartCommands.ClearServices(c.Request.Context(), sess); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
