package controllers

import (
	"io"
	"net/http"

	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/campuscanteen/canteen-api/realtime"
	"github.com/gin-gonic/gin"
)

type EventsController struct {
	Hub *realtime.Hub
}

func NewEventsController(hub *realtime.Hub) *EventsController {
	return &EventsController{Hub: hub}
}

// Stream is the SSE endpoint clients keep open for live updates. Every
// user joins their own room; staff and admin additionally join the shared
// staff room. No backlog is replayed: clients refresh their lists over
// REST after connecting.
func (ec *EventsController) Stream(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rooms := []string{userRoom(userId)}
	switch middlewares.UserRole(ctx) {
	case models.RoleStaff, models.RoleAdmin:
		rooms = append(rooms, realtime.StaffRoom)
	}

	events, cancel := ec.Hub.Subscribe(rooms...)
	defer cancel()

	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-events:
			if !open {
				return false
			}
			ctx.SSEvent(event.Name, event.Payload)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}
