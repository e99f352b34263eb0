package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/odacaict/domee.ro/handlers"
)

func TestRegisterRoutes_BookingLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{Bookings: &handlers.BookingHandler{}})

	registered := make(map[string]bool)
	for _, rt := range r.Routes() {
		registered[rt.Method+" "+rt.Path] = true
	}

	for _, want := range []string{
		"GET /api/bookings/slots",
		"POST /api/bookings",
		"GET /api/bookings/:id",
		"POST /api/bookings/:id/cancel",
		"POST /api/bookings/:id/confirm",
		"POST /api/bookings/:id/complete",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
