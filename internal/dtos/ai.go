// File: internal/dtos/ai.go
package dtos

type AnnouncementDraftRequest struct {
	Details string `json:"details" validate:"required"`
}

type InsightsRequest struct {
	Data string `json:"data" validate:"required"`
}

type AITextResponse struct {
	Text string `json:"text"`
}
