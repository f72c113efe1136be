package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubSiteverify(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret-key", r.Form.Get("secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRecaptchaVerifier_Success(t *testing.T) {
	stub := newStubSiteverify(t, `{"success": true}`)

	verifier := NewRecaptchaVerifier("secret-key")
	verifier.verifyURL = stub.URL

	err := verifier.Verify(context.Background(), "challenge-response", "127.0.0.1")
	assert.NoError(t, err)
}

func TestRecaptchaVerifier_Failure(t *testing.T) {
	stub := newStubSiteverify(t, `{"success": false, "error-codes": ["invalid-input-response"]}`)

	verifier := NewRecaptchaVerifier("secret-key")
	verifier.verifyURL = stub.URL

	err := verifier.Verify(context.Background(), "challenge-response", "127.0.0.1")
	assert.ErrorIs(t, err, ErrCaptchaFailed)
}

func TestRecaptchaVerifier_EmptyResponse(t *testing.T) {
	verifier := NewRecaptchaVerifier("secret-key")

	// No HTTP round trip for an empty challenge response.
	err := verifier.Verify(context.Background(), "", "127.0.0.1")
	assert.ErrorIs(t, err, ErrCaptchaFailed)
}
