// Package relay runs the relay agency the connections use when no other
// agency is at hand.
package relay

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbsaOSS/libvcx/agent/ssi"
	"github.com/AbsaOSS/libvcx/agent/trans"
	"github.com/AbsaOSS/libvcx/agent/validation"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Cmd serves the relay until it's interrupted.
type Cmd struct {
	Address string
	BaseURL string
}

func (c Cmd) Validate() (err error) {
	defer err2.Handle(&err)

	if c.Address == "" {
		return errors.New("listen address cannot be empty")
	}
	try.To1(validation.ValidateURL(c.BaseURL))
	return nil
}

func (c Cmd) Exec(w io.Writer) (r cmds.Result, err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return nil, c.Serve(ctx, w)
}

// Serve runs the relay until ctx is done.
func (c Cmd) Serve(ctx context.Context, w io.Writer) (err error) {
	defer err2.Handle(&err, "relay")

	server := &http.Server{
		Addr:              c.Address,
		Handler:           trans.NewRelay(ssi.NewWallet(nil, nil), c.BaseURL),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()
	cmds.Fprintln(w, "relay listening", c.Address, "as", c.BaseURL)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	glog.V(1).Infoln("relay shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	try.To(server.Shutdown(shutdownCtx))
	return nil
}
