//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"hotel-front/internal/infra/upstream"

	"github.com/gin-gonic/gin"
)

// Accounts known to the fake hotel API. Every password is "password123".
const (
	GuestUsername    = "jan.kowalski"
	EmployeeUsername = "anna.nowak"
	ManagerUsername  = "piotr.zielinski"
	FixturePassword  = "password123"
)

var fakeAccounts = map[string]upstream.UserDetails{
	GuestUsername:    {ID: 1, Username: GuestUsername, FirstName: "Jan", LastName: "Kowalski", Email: "jan@example.com", Role: "guest"},
	EmployeeUsername: {ID: 2, Username: EmployeeUsername, FirstName: "Anna", LastName: "Nowak", Email: "anna@example.com", Role: "employee"},
	ManagerUsername:  {ID: 3, Username: ManagerUsername, FirstName: "Piotr", LastName: "Zielinski", Email: "piotr@example.com", Role: "manager"},
}

// FakeUpstream is an in-process stand-in for the hotel REST API. It issues
// opaque tokens of the form "access:<username>" and records checkouts.
type FakeUpstream struct {
	server *httptest.Server

	mu           sync.Mutex
	reservations [][]upstream.ReservationRequest
	orders       [][]upstream.ServiceOrderRequest
}

func NewFakeUpstream() *FakeUpstream {
	f := &FakeUpstream{}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/token/", f.obtainToken)
	api.POST("/token/refresh/", f.refreshToken)
	api.GET("/users/me/", f.userDetails)
	api.POST("/reservations/", f.createReservations)
	api.POST("/services/orders/", f.orderServices)

	f.server = httptest.NewServer(r)
	return f
}

func (f *FakeUpstream) URL() string {
	return f.server.URL + "/api/"
}

func (f *FakeUpstream) Close() {
	f.server.Close()
}

func (f *FakeUpstream) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = nil
	f.orders = nil
}

// Reservations returns the batches received by POST reservations/.
func (f *FakeUpstream) Reservations() [][]upstream.ReservationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]upstream.ReservationRequest(nil), f.reservations...)
}

func (f *FakeUpstream) Orders() [][]upstream.ServiceOrderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]upstream.ServiceOrderRequest(nil), f.orders...)
}

func (f *FakeUpstream) obtainToken(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "malformed body"})
		return
	}
	if _, ok := fakeAccounts[body.Username]; !ok || body.Password != FixturePassword {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
		return
	}
	c.JSON(http.StatusOK, upstream.TokenPair{
		Access:  "access:" + body.Username,
		Refresh: "refresh:" + body.Username,
	})
}

func (f *FakeUpstream) refreshToken(c *gin.Context) {
	var body struct {
		Refresh string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !strings.HasPrefix(body.Refresh, "refresh:") {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}
	c.JSON(http.StatusOK, upstream.TokenPair{Access: "access:" + strings.TrimPrefix(body.Refresh, "refresh:")})
}

// account resolves the bearer token, answering 401 when it is unknown.
func (f *FakeUpstream) account(c *gin.Context) (upstream.UserDetails, bool) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	details, ok := fakeAccounts[strings.TrimPrefix(token, "access:")]
	if !ok || !strings.HasPrefix(token, "access:") {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return upstream.UserDetails{}, false
	}
	return details, true
}

func (f *FakeUpstream) userDetails(c *gin.Context) {
	details, ok := f.account(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, details)
}

func (f *FakeUpstream) createReservations(c *gin.Context) {
	if _, ok := f.account(c); !ok {
		return
	}
	var reqs []upstream.ReservationRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "malformed body"})
		return
	}

	f.mu.Lock()
	f.reservations = append(f.reservations, reqs)
	f.mu.Unlock()

	created := make([]upstream.Reservation, 0, len(reqs))
	for i, r := range reqs {
		created = append(created, upstream.Reservation{ID: int64(i + 1), Room: r.Room, CheckIn: r.CheckIn, CheckOut: r.CheckOut})
	}
	c.JSON(http.StatusCreated, created)
}

func (f *FakeUpstream) orderServices(c *gin.Context) {
	if _, ok := f.account(c); !ok {
		return
	}
	var reqs []upstream.ServiceOrderRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "malformed body"})
		return
	}

	f.mu.Lock()
	f.orders = append(f.orders, reqs)
	f.mu.Unlock()

	orders := make([]upstream.ServiceOrder, 0, len(reqs))
	for i, r := range reqs {
		orders = append(orders, upstream.ServiceOrder{ID: int64(i + 1), ServiceID: r.ServiceID, SlotID: r.SlotID, Status: "REQUESTED"})
	}
	c.JSON(http.StatusCreated, orders)
}
