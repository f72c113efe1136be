package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrCaptchaFailed is returned when the CAPTCHA challenge was not solved.
var ErrCaptchaFailed = errors.New("captcha verification failed")

// CaptchaVerifier checks a CAPTCHA challenge response.
type CaptchaVerifier interface {
	Verify(ctx context.Context, response, remoteIP string) error
}

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaVerifier validates responses against the reCAPTCHA v2
// siteverify API.
type RecaptchaVerifier struct {
	secretKey string
	verifyURL string
	client    *retryablehttp.Client
}

// NewRecaptchaVerifier creates a verifier for the given secret key.
func NewRecaptchaVerifier(secretKey string) *RecaptchaVerifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil

	return &RecaptchaVerifier{
		secretKey: secretKey,
		verifyURL: recaptchaVerifyURL,
		client:    client,
	}
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, response, remoteIP string) error {
	if response == "" {
		return ErrCaptchaFailed
	}

	form := url.Values{
		"secret":   {v.secretKey},
		"response": {response},
		"remoteip": {remoteIP},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	if !result.Success {
		return ErrCaptchaFailed
	}
	return nil
}
