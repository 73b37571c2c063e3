package http

import (
	"time"

	"escrow-marketplace/internal/event"
)

type recentReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (r recentReq) limit() int {
	switch {
	case r.Limit <= 0:
		return 50
	case r.Limit > 500:
		return 500
	default:
		return r.Limit
	}
}

type eventResp struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type recentResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func newRecentResp(events []event.Event) recentResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = eventResp{
			ID:         e.ID,
			Type:       string(e.Type),
			OccurredAt: e.OccurredAt,
			Payload:    e.Payload,
		}
	}
	return recentResp{Events: out, Count: len(out)}
}
