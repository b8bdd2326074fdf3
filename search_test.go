package md4rip

import (
	"context"
	"io"
	"runtime"
	"testing"
	"testing/iotest"
	"time"

	"github.com/pkg/errors"
	"github.com/zeebo/assert"
)

func TestSearchBudget(t *testing.T) {
	res, err := Search(context.Background(), IV, Config{Workers: 3, MaxTrials: 5})
	if err == nil {
		assert.That(t, res.Verify())
		return
	}
	assert.Equal(t, errors.Cause(err), ErrBudgetExhausted)
	assert.Equal(t, res.Trials, uint64(5))
}

func TestSearchTimeout(t *testing.T) {
	res, err := Search(context.Background(), IV, Config{Workers: 2, Timeout: time.Nanosecond})
	if err == nil {
		assert.That(t, res.Verify())
		return
	}
	assert.That(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, IV, Config{Workers: 4})
	assert.That(t, errors.Is(err, context.Canceled))
}

func TestSearchRandError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Search(context.Background(), IV, Config{
		Workers: 4,
		Rand:    func() io.Reader { return iotest.ErrReader(boom) },
	})
	assert.Error(t, err)
	assert.Equal(t, errors.Cause(err), boom)
}

func TestSearchRandErrorOneWorker(t *testing.T) {
	boom := errors.New("boom")

	// one broken source among good ones still stops the search, unless a
	// good worker gets lucky first.
	n := 0
	res, err := Search(context.Background(), IV, Config{
		Workers: 3,
		Rand: func() io.Reader {
			n++
			if n == 2 {
				return iotest.ErrReader(boom)
			}
			return seeded(int64(n))
		},
	})
	if err == nil {
		assert.That(t, res.Verify())
		return
	}
	assert.Equal(t, errors.Cause(err), boom)
}

func TestSearchParallel(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}

	init := IV.Compress(&[BlockSize]byte{1, 2, 3})
	res, err := Search(context.Background(), init, Config{Workers: runtime.NumCPU()})
	assert.NoError(t, err)
	assert.That(t, res.Verify())
	assert.Equal(t, res.Init, init)
	assert.That(t, res.Trials > 0)
	t.Logf("found after %d trials", res.Trials)
}
