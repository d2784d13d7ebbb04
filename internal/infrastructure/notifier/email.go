package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type HTTPEmailSender struct {
	Address string
	APIKey  string
	client  *http.Client
}

func NewHTTPEmailSender(address, apiKey string) *HTTPEmailSender {
	return &HTTPEmailSender{
		Address: address,
		APIKey:  apiKey,
		client:  &http.Client{},
	}
}

type emailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type vendorErrorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	requestBodyBytes, err := json.Marshal(emailRequest{
		To: to,
		Subject: subject,
		Body: body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/messages", s.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	response, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}else {
		var errorResponse vendorErrorResponse
		if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
			return fmt.Errorf("email provider returned status %d", response.StatusCode)
		}
		return errors.New(errorResponse.Error)
	}
}
