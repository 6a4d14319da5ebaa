package clientstate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	mu      sync.Mutex
	saves   []int
	started chan struct{}
	gate    chan struct{}
	failing bool
}

func newRecordingPersister() *recordingPersister {
	return &recordingPersister{started: make(chan struct{}, 16)}
}

func (p *recordingPersister) Load(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (p *recordingPersister) Save(_ context.Context, _ string, v interface{}) error {
	p.started <- struct{}{}
	if p.gate != nil {
		<-p.gate
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = append(p.saves, v.(int))
	if p.failing {
		return errors.New("disk full")
	}
	return nil
}

func (p *recordingPersister) recorded() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.saves...)
}

type failingLoader struct{ *MemoryPersister }

func (failingLoader) Load(context.Context, string, interface{}) (bool, error) {
	return false, errors.New("connection refused")
}

func TestMemoryPersister(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()

	var got []string
	found, err := p.Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	in := []string{"a", "b"}
	require.NoError(t, p.Save(ctx, "k", in))
	in[0] = "changed"

	found, err = p.Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRedisPersisterUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	p := NewRedisPersister(client, "growshop:cart:", 0)
	assert.Equal(t, DefaultTTL, p.ttl)

	var dst map[string]int
	found, err := p.Load(context.Background(), "abc", &dst)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, p.Save(context.Background(), "abc", map[string]int{"a": 1}))
}

func TestObservable(t *testing.T) {
	obs := NewObservable(0)

	var calls []string
	unsubA := obs.Subscribe(func(s int) { calls = append(calls, "a") })
	obs.Subscribe(func(s int) { calls = append(calls, "b") })

	assert.Equal(t, 5, obs.Update(func(s int) int { return s + 5 }))
	assert.Equal(t, 5, obs.Get())
	assert.Equal(t, []string{"a", "b"}, calls)

	unsubA()
	unsubA()
	obs.Update(func(s int) int { return s + 1 })
	assert.Equal(t, []string{"a", "b", "b"}, calls)
}

func TestAutosaverCoalesces(t *testing.T) {
	p := newRecordingPersister()
	p.gate = make(chan struct{})
	a := NewAutosaver[int](p, "k")

	a.Schedule(1)
	<-p.started

	a.Schedule(2)
	a.Schedule(3)
	a.Schedule(4)
	close(p.gate)

	a.Close()
	assert.Equal(t, []int{1, 4}, p.recorded())

	a.Schedule(5)
	a.Close()
	assert.Equal(t, []int{1, 4}, p.recorded())
}

func TestAutosaverSwallowsErrors(t *testing.T) {
	p := newRecordingPersister()
	p.failing = true
	a := NewAutosaver[int](p, "k")

	a.Schedule(7)
	a.Close()
	assert.Equal(t, []int{7}, p.recorded())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("hydrates and autosaves", func(t *testing.T) {
		p := NewMemoryPersister()
		require.NoError(t, p.Save(ctx, "k", []string{"x"}))

		obs, closeFn := Open[[]string](ctx, p, "k")
		assert.Equal(t, []string{"x"}, obs.Get())

		obs.Update(func(s []string) []string { return append(append([]string(nil), s...), "y") })
		closeFn()

		var stored []string
		found, err := p.Load(ctx, "k", &stored)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []string{"x", "y"}, stored)
	})

	t.Run("load failure starts empty", func(t *testing.T) {
		obs, closeFn := Open[[]string](ctx, failingLoader{NewMemoryPersister()}, "k")
		defer closeFn()
		assert.Empty(t, obs.Get())
	})
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	opened := map[string]int{}
	closed := map[string]int{}
	var mu sync.Mutex

	open := func(_ context.Context, key string) (*int, func(), error) {
		if key == "broken" {
			return nil, nil, errors.New("cannot open")
		}
		mu.Lock()
		opened[key]++
		mu.Unlock()
		v := 0
		return &v, func() {
			mu.Lock()
			closed[key]++
			mu.Unlock()
		}, nil
	}

	r := NewRegistry[*int]("test", open, time.Minute, prometheus.NewRegistry())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.With(ctx, "a", func(v *int) error {
				*v++
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, r.With(ctx, "a", func(v *int) error {
		assert.Equal(t, 50, *v)
		return nil
	}))
	assert.Equal(t, 1, opened["a"])

	t.Run("open error is returned and not cached", func(t *testing.T) {
		err := r.With(ctx, "broken", func(*int) error { return nil })
		assert.Error(t, err)
	})

	t.Run("fn error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		assert.ErrorIs(t, r.With(ctx, "b", func(*int) error { return boom }), boom)
	})

	t.Run("sweep evicts idle entries", func(t *testing.T) {
		assert.Equal(t, 0, r.Sweep())

		now = now.Add(2 * time.Minute)
		require.NoError(t, r.With(ctx, "c", func(*int) error { return nil }))

		assert.Equal(t, 2, r.Sweep())
		assert.Equal(t, 1, closed["a"])
		assert.Equal(t, 1, closed["b"])
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, 1.0, testutil.ToFloat64(r.live))
	})

	t.Run("close flushes everything", func(t *testing.T) {
		r.Close()
		assert.Equal(t, 1, closed["c"])
		assert.Equal(t, 0, r.Len())
	})
}

func TestVisitorID(t *testing.T) {
	t.Run("issues cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		id := VisitorID(rec, httptest.NewRequest(http.MethodGet, "/", nil), true)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, VisitorCookieName, cookies[0].Name)
		assert.Equal(t, id, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, 30*24*3600, cookies[0].MaxAge)
	})

	t.Run("reuses valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
		rec := httptest.NewRecorder()

		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", VisitorID(rec, req, false))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("replaces malformed cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "../../etc"})
		rec := httptest.NewRecorder()

		id := VisitorID(rec, req, false)
		assert.NotEqual(t, "../../etc", id)
		assert.Len(t, rec.Result().Cookies(), 1)
	})
}
