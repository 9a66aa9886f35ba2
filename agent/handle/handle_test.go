package handle

import (
	"errors"
	"sync"
	"testing"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/lainio/err2/assert"
)

type counter struct {
	name string
	n    int
}

func TestRegistry_AddGet(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	r := New[*counter]("counter", vcxerr.InvalidHandle)
	h := r.Add(&counter{name: "first"})
	assert.That(h != 0)
	assert.That(r.Has(h))
	assert.Equal(r.Len(), 1)

	var name string
	assert.NoError(r.Get(h, func(c *counter) error {
		name = c.name
		return nil
	}))
	assert.Equal(name, "first")

	err := r.Get(h+1, func(*counter) error { return nil })
	assert.Error(err)
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidHandle)
}

func TestRegistry_GetMut(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	r := New[counter]("counter", vcxerr.InvalidHandle)
	h := r.Add(counter{name: "c"})

	assert.NoError(r.GetMut(h, func(c counter) (counter, error) {
		c.n = 5
		return c, nil
	}))
	errFailed := errors.New("step failed")
	err := r.GetMut(h, func(c counter) (counter, error) {
		c.n = 100
		return c, errFailed
	})
	assert.That(errors.Is(err, errFailed))

	assert.NoError(r.Get(h, func(c counter) error {
		assert.Equal(c.n, 5)
		return nil
	}))
}

func TestRegistry_Release(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	r := New[*counter]("connection", vcxerr.InvalidConnectionHandle)
	h := r.Add(&counter{})
	assert.NoError(r.Release(h))
	assert.ThatNot(r.Has(h))

	err := r.Get(h, func(*counter) error { return nil })
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidConnectionHandle)
	err = r.Release(h)
	assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidConnectionHandle)
}

func TestRegistry_ReleaseAll(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	r := New[*counter]("counter", vcxerr.InvalidHandle)
	handles := make([]uint32, 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, r.Add(&counter{n: i}))
	}
	assert.Equal(len(r.Handles()), 10)

	r.ReleaseAll()
	assert.Equal(r.Len(), 0)
	for _, h := range handles {
		err := r.Get(h, func(*counter) error { return nil })
		assert.Equal(vcxerr.KindOf(err), vcxerr.InvalidHandle)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	assert.PushTester(t)
	defer assert.PopTester()

	r := New[*counter]("counter", vcxerr.InvalidHandle)
	h := r.Add(&counter{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.GetMut(h, func(c *counter) (*counter, error) {
				c.n++
				return c, nil
			})
		}()
	}
	wg.Wait()

	assert.NoError(r.Get(h, func(c *counter) error {
		assert.Equal(c.n, 50)
		return nil
	}))
}
