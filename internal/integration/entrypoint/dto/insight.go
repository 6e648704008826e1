// Package dto defines data transfer objects for API requests and responses.
package dto

// GenerateInsightRequest represents the request body for AI advice generation.
type GenerateInsightRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
	Model    string `json:"model,omitempty"`
}

// QuickInsightRequest represents the request body for canned-topic advice.
type QuickInsightRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// InsightResponse represents the response for AI advice endpoints.
type InsightResponse struct {
	Advice string `json:"advice"`
}
