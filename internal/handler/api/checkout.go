package api

import (
	"net/http"

	resdto "hotel-front/internal/handler/dto/response"
	"hotel-front/internal/handler/httperr"
	"hotel-front/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Book the reservation cart
// @Description Sends every cart item in one request and empties the cart on success
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 201 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout/reservations [post]
func (h *CheckoutHandler) CheckoutReservations(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	reservations, err := h.checkoutCommands.CheckoutReservations(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromReservations(reservations)
	renderJSON(c, http.StatusCreated, body, err)
}

// @Summary Order the service cart
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 201 {array} resdto.ServiceOrderResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout/services [post]
func (h *CheckoutHandler) CheckoutServices(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		return
	}

	orders, err := h.checkoutCommands.CheckoutServices(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	body, err := resdto.FromServiceOrders(orders)
	renderJSON(c, http.StatusCreated, body, err)
}
