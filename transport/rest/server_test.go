package rest

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		// Given: a server on a random port
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			done <- Start(ctx, "0", http.NotFoundHandler())
		}()

		// When: the context is cancelled
		cancel()

		// Then: Start returns without error
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(shutdownTimeout + time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Reports a port that cannot be bound", func(t *testing.T) {
		err := Start(context.Background(), "-1", http.NotFoundHandler())

		assert.Error(t, err)
	})
}
