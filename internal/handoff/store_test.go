package handoff

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeReadsOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, PayloadKey, `{"personalInfo":{}}`))
	require.NoError(t, store.Set(ctx, MarkerKey, MarkerCompleted))
	require.NoError(t, store.Set(ctx, TokenKey, "tok-123"))

	payload, found, err := Consume(ctx, store)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"personalInfo":{}}`, payload)

	// All three keys are gone; a second consumer sees nothing.
	_, found, err = Consume(ctx, store)
	require.NoError(t, err)
	assert.False(t, found)
	_, tokenLeft, _ := store.Get(ctx, TokenKey)
	assert.False(t, tokenLeft)
}

func TestConsumeRequiresCompletedMarker(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, PayloadKey, `{}`))
	require.NoError(t, store.Set(ctx, MarkerKey, "pending"))

	_, found, err := Consume(ctx, store)
	require.NoError(t, err)
	assert.False(t, found)

	// The payload stays put until the marker flips to completed.
	_, stillThere, _ := store.Get(ctx, PayloadKey)
	assert.True(t, stillThere)
}

func TestConsumeEmptyPayloadStillFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, PayloadKey, ""))
	require.NoError(t, store.Set(ctx, MarkerKey, MarkerCompleted))

	payload, found, err := Consume(ctx, store)
	require.NoError(t, err)
	assert.True(t, found, "empty-but-present payload is distinct from absent")
	assert.Empty(t, payload)
}

func TestConsumeNothingStored(t *testing.T) {
	_, found, err := Consume(context.Background(), NewMemoryStore())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestConsumeMarkerWithoutPayloadLeavesMarker(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, MarkerKey, MarkerCompleted))

	_, found, err := Consume(ctx, store)
	require.NoError(t, err)
	assert.False(t, found)

	// The marker survives so the channel completes once the payload lands.
	marker, markerLeft, _ := store.Get(ctx, MarkerKey)
	assert.True(t, markerLeft)
	assert.Equal(t, MarkerCompleted, marker)
}

func TestConsumeConcurrentReadersGetOnePayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, PayloadKey, `{"experience":[{"company":"Once Co"}]}`))
	require.NoError(t, store.Set(ctx, MarkerKey, MarkerCompleted))
	require.NoError(t, store.Set(ctx, TokenKey, "tok-123"))

	const readers = 16
	results := make(chan string, readers)
	errs := make(chan error, readers)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer done.Done()
			start.Wait()
			payload, found, err := Consume(ctx, store)
			if err != nil {
				errs <- err
				return
			}
			if found {
				results <- payload
			}
		}()
	}
	start.Done()
	done.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var payloads []string
	for p := range results {
		payloads = append(payloads, p)
	}
	require.Len(t, payloads, 1, "exactly one reader may receive the payload")
	assert.Equal(t, `{"experience":[{"company":"Once Co"}]}`, payloads[0])

	_, found, err := Consume(ctx, store)
	require.NoError(t, err)
	assert.False(t, found)
}
