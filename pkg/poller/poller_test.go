package poller_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sproutwallet/sproutd/pkg/poller"
)

type countingTarget struct {
	key   string
	polls int64
	err   error
}

func (t *countingTarget) Key() string {
	return t.key
}

func (t *countingTarget) Poll(_ context.Context) (interface{}, error) {
	count := atomic.AddInt64(&t.polls, 1)
	return count, t.err
}

func TestPollerEmitsEvents(t *testing.T) {
	svc := poller.NewService(poller.Opts{
		IntervalInMilliseconds: 10,
		RequestsPerSecond:      1000,
	})
	target := &countingTarget{key: "sync_status"}
	svc.AddTarget(target)
	svc.Start()

	select {
	case event := <-svc.EventChannel():
		require.Equal(t, "sync_status", event.Key)
		require.NoError(t, event.Err)
		require.NotNil(t, event.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	svc.Stop()
}

func TestPollerForwardsErrors(t *testing.T) {
	svc := poller.NewService(poller.Opts{
		IntervalInMilliseconds: 10,
		RequestsPerSecond:      1000,
	})
	svc.AddTarget(&countingTarget{key: "peers", err: errors.New("backend down")})
	svc.Start()

	select {
	case event := <-svc.EventChannel():
		require.Equal(t, "peers", event.Key)
		require.EqualError(t, event.Err, "backend down")
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	svc.Stop()
}

func TestPollerStopClosesEventChannel(t *testing.T) {
	svc := poller.NewService(poller.Opts{
		IntervalInMilliseconds: 10,
		RequestsPerSecond:      1000,
	})
	target := &countingTarget{key: "sync_status"}
	svc.AddTarget(target)
	svc.Start()

	// Let it poll at least once, then tear everything down.
	<-svc.EventChannel()
	svc.Stop()

	for range svc.EventChannel() {
	}

	polls := atomic.LoadInt64(&target.polls)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, polls, atomic.LoadInt64(&target.polls))
}

func TestPollerIgnoresDuplicateTargets(t *testing.T) {
	svc := poller.NewService(poller.Opts{
		IntervalInMilliseconds: 10,
		RequestsPerSecond:      1000,
	})
	first := &countingTarget{key: "sync_status"}
	second := &countingTarget{key: "sync_status"}
	svc.AddTarget(first)
	svc.AddTarget(second)
	svc.Start()

	<-svc.EventChannel()
	svc.Stop()

	require.Zero(t, atomic.LoadInt64(&second.polls))
}
