package connection

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/AbsaOSS/libvcx/agent/status"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// WatchCmd polls the connection until it's completed or the timeout
// expires.
type WatchCmd struct {
	Cmd
	Interval time.Duration
	Timeout  time.Duration
}

func (c WatchCmd) Validate() (err error) {
	defer err2.Handle(&err)

	try.To(c.Cmd.Validate())
	if c.Interval <= 0 || c.Timeout <= 0 {
		return errors.New("interval and timeout must be positive")
	}
	return nil
}

func (c WatchCmd) Exec(w io.Writer) (r cmds.Result, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	return c.exec(w, nil, func(e *cmds.Env, h uint32, _ *Result) (err error) {
		defer err2.Handle(&err, "watch")

		done := make(chan error, 1)
		s := gocron.NewScheduler(time.Now().Location())
		try.To1(s.Every(c.Interval).Do(func() {
			if err := c.poll(ctx, e, h); err != nil || c.completed(e, h) {
				select {
				case done <- err:
				default:
				}
			}
		}))
		s.StartAsync()
		defer s.Stop()

		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return vcxerr.Wrap(vcxerr.NotReady, ctx.Err(), "connection not completed")
		}
	})
}

func (c WatchCmd) poll(ctx context.Context, e *cmds.Env, h uint32) error {
	err := e.ConnectionUpdateState(ctx, h)
	if err != nil {
		glog.Warningln("watch", c.Name, "update:", err)
	}
	return err
}

func (WatchCmd) completed(e *cmds.Env, h uint32) bool {
	st, err := e.ConnectionState(h)
	return err == nil && st == status.Accepted
}
