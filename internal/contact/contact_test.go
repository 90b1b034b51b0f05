package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Submission {
	return Submission{
		ID:      "test-id",
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Let's build an engine.",
	}
}

func TestRelaySendSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		if !assert.NoError(t, r.ParseForm()) {
			return
		}

		want := map[string]string{
			"access_key": "key-123",
			"name":       "Ada",
			"email":      "ada@example.com",
			"subject":    "Hello",
			"message":    "Let's build an engine.",
			"botcheck":   "",
		}
		for field, value := range want {
			assert.Contains(t, r.PostForm, field)
			assert.Equal(t, value, r.PostForm.Get(field), "field %q", field)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Email sent"}`))
	}))
	defer server.Close()

	relay := NewRelay(server.URL, "key-123", time.Second)
	require.NoError(t, relay.Send(context.Background(), sample()))
	assert.Equal(t, int32(1), calls.Load(), "expected exactly one request")
}

func TestRelaySendRejected(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "message": "Invalid access key"}`))
	}))
	defer server.Close()

	err := NewRelay(server.URL, "bad", time.Second).Send(context.Background(), sample())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "Invalid access key")
	assert.Equal(t, int32(1), calls.Load(), "expected a single attempt")
}

func TestRelaySendUnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	err := NewRelay(server.URL, "key", time.Second).Send(context.Background(), sample())
	assert.Error(t, err)
}

func TestRelaySendNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewRelay(url, "key", time.Second).Send(context.Background(), sample())
	assert.Error(t, err)
}

func TestRelayWithoutKey(t *testing.T) {
	err := NewRelay("", "", 0).Send(context.Background(), sample())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewRelayDefaults(t *testing.T) {
	relay := NewRelay("", "key", 0)
	assert.Equal(t, DefaultEndpoint, relay.endpoint)
	assert.Equal(t, DefaultTimeout, relay.httpClient.Timeout)
}

func TestNormalize(t *testing.T) {
	sub := Submission{Name: "  Ada ", Email: " ada@example.com\n", Subject: "Hi ", Message: "\tHello"}
	sub.Normalize()

	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "ada@example.com", sub.Email)
	assert.Equal(t, "Hi", sub.Subject)
	assert.Equal(t, "Hello", sub.Message)
	require.NotEmpty(t, sub.ID)

	id := sub.ID
	sub.Normalize()
	assert.Equal(t, id, sub.ID, "id should be stable across Normalize calls")
}

func TestMailerSend(t *testing.T) {
	m := NewMailer(SMTPConfig{User: "me@example.com", Pass: "secret", To: "inbox@example.com"})

	var gotAddr string
	var gotMsg []byte
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotMsg = msg
		return nil
	}

	require.NoError(t, m.Send(context.Background(), sample()))
	assert.Equal(t, "smtp.gmail.com:587", gotAddr)
	for _, want := range []string{"Subject: Portfolio Contact: Hello", "Reply-To: ada@example.com", "Let's build an engine."} {
		assert.Contains(t, string(gotMsg), want)
	}
}

func TestMailerDropsHoneypot(t *testing.T) {
	m := NewMailer(SMTPConfig{User: "me@example.com", Pass: "secret", To: "inbox@example.com"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Error("Expected no mail for a filled honeypot")
		return nil
	}

	sub := sample()
	sub.Botcheck = "on"
	assert.NoError(t, m.Send(context.Background(), sub), "a filled honeypot is dropped silently")
}

func TestMailerHeaderInjection(t *testing.T) {
	m := NewMailer(SMTPConfig{To: "inbox@example.com"})
	sub := sample()
	sub.Subject = "Hi\r\nBcc: victim@example.com"

	headers, _, _ := strings.Cut(string(m.Message(sub)), "\r\n\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestMailerNotConfigured(t *testing.T) {
	err := NewMailer(SMTPConfig{}).Send(context.Background(), sample())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
