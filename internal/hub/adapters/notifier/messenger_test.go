package notifier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrohub/internal/hub/adapters/notifier"
)

func TestMessengerSendWelcome(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the form to the relay", func(t *testing.T) {
		var gotAPIKey, gotSender, gotMobile, gotMsg string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotAPIKey = r.Header.Get("apikey")
			gotSender = r.PostFormValue("sender")
			gotMobile = r.PostFormValue("mobile")
			gotMsg = r.PostFormValue("msg")
		}))
		defer srv.Close()

		messenger := notifier.NewMessenger(srv.URL, "relay-key", "AgroSmartHub", time.Second)
		require.NoError(t, messenger.SendWelcome(ctx, "+917980614349"))

		assert.Equal(t, "relay-key", gotAPIKey)
		assert.Equal(t, "AgroSmartHub", gotSender)
		assert.Equal(t, "+917980614349", gotMobile)
		assert.Contains(t, gotMsg, "Thank you for registering")
	})

	t.Run("non-200 relay response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		messenger := notifier.NewMessenger(srv.URL, "relay-key", "AgroSmartHub", time.Second)
		err := messenger.SendWelcome(ctx, "+917980614349")

		require.Error(t, err)
	})

	t.Run("unreachable relay is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		messenger := notifier.NewMessenger(srv.URL, "relay-key", "AgroSmartHub", time.Second)
		require.Error(t, messenger.SendWelcome(ctx, "+917980614349"))
	})
}
