package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowConsumesBurstThenDenies(t *testing.T) {
	l := New(3, 0.0001)

	assert.True(t, l.Allow("yahoo"))
	assert.True(t, l.Allow("yahoo"))
	assert.True(t, l.Allow("yahoo"))
	assert.False(t, l.Allow("yahoo"))
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New(1, 0.0001)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestAllowRefillsOverTime(t *testing.T) {
	l := New(1, 100)

	require.True(t, l.Allow("yahoo"))
	require.False(t, l.Allow("yahoo"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("yahoo"), "30ms at 100 tokens/s should refill a token")
}

func TestWaitReturnsOnceTokenAvailable(t *testing.T) {
	l := New(1, 50)
	require.True(t, l.Allow("yahoo"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, l.Wait(ctx, "yahoo"))
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	l := New(1, 0.0001)
	require.True(t, l.Allow("yahoo"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx, "yahoo")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
