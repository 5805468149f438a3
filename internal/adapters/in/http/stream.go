package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"laundry/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const streamKeepAliveInterval = 15 * time.Second

// TrackingStreamEvent is the JSON payload of one SSE message.
type TrackingStreamEvent struct {
	TrackingID string     `json:"tracking_id"`
	Status     string     `json:"status"`
	Latitude   *float64   `json:"lat,omitempty"`
	Longitude  *float64   `json:"lng,omitempty"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// StreamOrderTracking handles GET /api/v1/orders/:id/tracking/stream.
// Streams tracking updates as server-sent events until the client
// disconnects.
func (s *Server) StreamOrderTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	events, cancel := s.subscriber.Subscribe(orderID)
	defer cancel()

	keepAlive := time.NewTicker(streamKeepAliveInterval)
	defer keepAlive.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case <-keepAlive.C:
			if _, err = fmt.Fprint(response, ": keep-alive\n\n"); err != nil {
				return nil
			}
			response.Flush()
		case event, open := <-events:
			if !open {
				return nil
			}
			if err = writeStreamEvent(response, event); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

func writeStreamEvent(response *echo.Response, event ports.TrackingEvent) error {
	payload := TrackingStreamEvent{
		TrackingID: event.TrackingID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.Location != nil {
		lat := event.Location.Point.Latitude()
		lng := event.Location.Point.Longitude()
		recordedAt := event.Location.RecordedAt
		payload.Latitude = &lat
		payload.Longitude = &lng
		payload.RecordedAt = &recordedAt
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(response, "event: tracking\ndata: %s\n\n", data)
	return err
}
