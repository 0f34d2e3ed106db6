package contact

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
)

type recordingDispatcher struct {
	events []EmailEvent
	fail   bool
}

func (d *recordingDispatcher) EnqueueEmailEvent(_ context.Context, event EmailEvent) error {
	if d.fail {
		return errors.New("queue unavailable")
	}
	d.events = append(d.events, event)
	return nil
}

func newTestService(d Dispatcher) Service {
	return NewService(repository.MemoryScope(repository.NewMemoryStore()), d)
}

func TestCreateMessageEnqueuesEmail(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := newTestService(dispatcher)
	ctx := context.Background()

	res, err := svc.CreateMessage(ctx, CreateMessageRequest{
		Name:  "Ayşe",
		Email: "ayse@example.com",
		Body:  "Hello there",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, EmailKindContactReceived, dispatcher.events[0].Kind)
	assert.Equal(t, "ayse@example.com", dispatcher.events[0].To)
}

func TestCreateMessageSurvivesQueueFailure(t *testing.T) {
	svc := newTestService(&recordingDispatcher{fail: true})

	res, err := svc.CreateMessage(context.Background(), CreateMessageRequest{
		Name:  "Mehmet",
		Email: "mehmet@example.com",
		Body:  "Queue is down",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestCreateMessageValidation(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.CreateMessage(context.Background(), CreateMessageRequest{
		Name:  "No Email",
		Email: "not-an-email",
		Body:  "body",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMarkRead(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	created, err := svc.CreateMessage(ctx, CreateMessageRequest{
		Name:  "Reader",
		Email: "reader@example.com",
		Body:  "read me",
	})
	require.NoError(t, err)
	require.False(t, created.Data.IsRead)

	res, err := svc.MarkRead(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.True(t, res.Data.IsRead)

	// Second call is a no-op success.
	res, err = svc.MarkRead(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestSubscribeDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService(&recordingDispatcher{})
	ctx := context.Background()

	first, err := svc.Subscribe(ctx, SubscribeRequest{Email: "sub@example.com"})
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Subscribe(ctx, SubscribeRequest{Email: "sub@example.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestUnsubscribeHidesSubscriber(t *testing.T) {
	svc := newTestService(&recordingDispatcher{})
	ctx := context.Background()

	created, err := svc.Subscribe(ctx, SubscribeRequest{Email: "leaver@example.com"})
	require.NoError(t, err)
	require.True(t, created.Success)

	res, err := svc.Unsubscribe(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	list, err := svc.ListSubscribers(ctx, query.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, list.Data.Total)
}
