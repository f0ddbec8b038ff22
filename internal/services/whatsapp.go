package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brunofarias/zapboard/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendResult is the outcome of one outbound message attempt.
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// MessageSender sends a text message to a phone number. Implemented by
// WhatsAppService; tests inject fakes.
type MessageSender interface {
	Send(ctx context.Context, phoneNumber, body string) SendResult
}

// whatsAppTextMessage is the WhatsApp Business API text message payload.
type whatsAppTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// whatsAppSendResponse is the subset of the API response we read.
type whatsAppSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// WhatsAppService sends text messages through the WhatsApp Business API.
type WhatsAppService struct {
	apiURL string
	token  string
	dryRun bool
	client *http.Client
}

// NewWhatsAppService creates a WhatsAppService. With dryRun set, messages
// are not transmitted; sends succeed locally with a generated id.
func NewWhatsAppService(apiURL, token string, dryRun bool) *WhatsAppService {
	return &WhatsAppService{
		apiURL: apiURL,
		token:  token,
		dryRun: dryRun,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers a text message to phoneNumber. Never panics and never
// returns an error: failures are reported in the result so callers can
// treat dispatch as best-effort.
func (s *WhatsAppService) Send(ctx context.Context, phoneNumber, body string) SendResult {
	if s.dryRun {
		id := uuid.NewString()
		logger.L().Info("whatsapp dry-run send",
			zap.String("to", phoneNumber),
			zap.String("message_id", id))
		return SendResult{Success: true, MessageID: id}
	}

	if s.apiURL == "" || s.token == "" {
		return SendResult{Error: "WhatsApp API configuration is missing"}
	}

	payload := whatsAppTextMessage{
		MessagingProduct: "whatsapp",
		To:               phoneNumber,
		Type:             "text",
	}
	payload.Text.Body = body

	data, err := json.Marshal(payload)
	if err != nil {
		return SendResult{Error: fmt.Sprintf("failed to encode payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(data))
	if err != nil {
		return SendResult{Error: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return SendResult{Error: fmt.Sprintf("WhatsApp API request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.L().Warn("whatsapp send rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody))
		return SendResult{Error: fmt.Sprintf("API responded with status %d", resp.StatusCode)}
	}

	var parsed whatsAppSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return SendResult{Error: fmt.Sprintf("failed to decode response: %v", err)}
	}

	messageID := "unknown"
	if len(parsed.Messages) > 0 {
		messageID = parsed.Messages[0].ID
	}

	return SendResult{Success: true, MessageID: messageID}
}
