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

type HTTPSMSSender struct {
	Address string
	APIKey  string
	client  *http.Client
}

func NewHTTPSMSSender(address, apiKey string) *HTTPSMSSender {
	return &HTTPSMSSender{
		Address: address,
		APIKey:  apiKey,
		client:  &http.Client{},
	}
}

type smsRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

func (s *HTTPSMSSender) SendSMS(ctx context.Context, phone, text string) error {
	requestBodyBytes, err := json.Marshal(smsRequest{
		Phone: phone,
		Text: text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/sms", s.Address), bytes.NewBuffer(requestBodyBytes))
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
			return fmt.Errorf("sms provider returned status %d", response.StatusCode)
		}
		return errors.New(errorResponse.Error)
	}
}
