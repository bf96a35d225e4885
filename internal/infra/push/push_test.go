package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"geofence/config"
	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/service"
	mockSvc "geofence/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func createTestPayload() *service.PushPayload {
	return &service.PushPayload{
		Title: "Pothole on Main St",
		Body:  "You are 12 m away from Pothole on Main St",
		URL:   "https://app.example.com/experiences/1",
		Data:  map[string]string{"type": constants.NotificationTypeProximity},
	}
}

func createTestWebPushSubscription(t *testing.T, endpoint string) *entity.PushSubscription {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	secret := make([]byte, 16)
	_, err = rand.Read(secret)
	require.NoError(t, err)

	return &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   "user-1",
		Platform: constants.PlatformWebPush,
		Endpoint: endpoint,
		P256dh:   base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		Auth:     base64.RawURLEncoding.EncodeToString(secret),
	}
}

func createTestWebPushSender(t *testing.T) service.PushSender {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	sender, err := NewWebPushSender(&config.VAPIDConfig{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Subscriber: "mailto:ops@example.com",
	}, nil, createTestLogger())
	require.NoError(t, err)

	return sender
}

func TestWebPushSender_Send(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantErr     bool
		wantExpired bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "gone", status: http.StatusGone, wantErr: true, wantExpired: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true, wantExpired: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received *http.Request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received = r
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			sender := createTestWebPushSender(t)
			err := sender.Send(context.Background(), createTestWebPushSubscription(t, server.URL+"/push/abc"), createTestPayload())

			require.NotNil(t, received)
			assert.Equal(t, http.MethodPost, received.Method)
			assert.Equal(t, "aes128gcm", received.Header.Get("Content-Encoding"))
			assert.Contains(t, received.Header.Get("Authorization"), "vapid")

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			var deliveryErr *domainerrors.DeliveryError
			require.True(t, errors.As(err, &deliveryErr))
			assert.Equal(t, tt.wantExpired, deliveryErr.Expired())
		})
	}
}

func TestNewWebPushSender_RequiresKeys(t *testing.T) {
	_, err := NewWebPushSender(&config.VAPIDConfig{PublicKey: "pub"}, nil, createTestLogger())
	assert.Error(t, err)

	_, err = NewWebPushSender(nil, nil, createTestLogger())
	assert.Error(t, err)
}

type fakeFCMClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeFCMClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/test/messages/1", nil
}

func TestFCMSender_Send(t *testing.T) {
	client := &fakeFCMClient{}
	sender := newFCMSender(client, createTestLogger())
	subscription := &entity.PushSubscription{ID: uuid.New(), Platform: constants.PlatformFCM, Endpoint: "registration-token"}

	require.NoError(t, sender.Send(context.Background(), subscription, createTestPayload()))

	require.Len(t, client.sent, 1)
	message := client.sent[0]
	assert.Equal(t, "registration-token", message.Token)
	assert.Equal(t, "Pothole on Main St", message.Notification.Title)
	assert.Equal(t, "https://app.example.com/experiences/1", message.Data["url"])
	assert.Equal(t, constants.NotificationTypeProximity, message.Data["type"])
}

func TestFCMSender_SendFailure(t *testing.T) {
	client := &fakeFCMClient{err: errors.New("unavailable")}
	sender := newFCMSender(client, createTestLogger())

	err := sender.Send(context.Background(), &entity.PushSubscription{Endpoint: "registration-token"}, createTestPayload())

	var deliveryErr *domainerrors.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	assert.False(t, deliveryErr.Expired())
	assert.Equal(t, "registration-token", deliveryErr.Endpoint())
}

func TestMultiSender_Routing(t *testing.T) {
	webSender := mockSvc.NewMockPushSender(t)
	fcm := mockSvc.NewMockPushSender(t)
	sender := NewMultiSender(map[string]service.PushSender{
		constants.PlatformWebPush: webSender,
		constants.PlatformFCM:     fcm,
	})
	ctx := context.Background()
	payload := createTestPayload()

	webSub := &entity.PushSubscription{Platform: constants.PlatformWebPush, Endpoint: "https://push.example.com/a"}
	fcmSub := &entity.PushSubscription{Platform: constants.PlatformFCM, Endpoint: "token"}

	webSender.EXPECT().Send(ctx, webSub, payload).Return(nil).Once()
	fcm.EXPECT().Send(ctx, fcmSub, payload).Return(nil).Once()

	require.NoError(t, sender.Send(ctx, webSub, payload))
	require.NoError(t, sender.Send(ctx, fcmSub, payload))

	err := sender.Send(ctx, &entity.PushSubscription{Platform: "apns", Endpoint: "x"}, payload)
	var deliveryErr *domainerrors.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	assert.False(t, deliveryErr.Expired())
}

func TestNewSender_NothingConfigured(t *testing.T) {
	cfg := &config.Config{Push: &config.PushConfig{}}

	sender, err := NewSender(SenderParams{Ctx: context.Background(), Config: cfg, Logger: createTestLogger()})
	require.NoError(t, err)
	assert.Nil(t, sender)
}
