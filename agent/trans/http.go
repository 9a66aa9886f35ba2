package trans

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// errorMessageMaxLength is the maximum length of the response body we will
// include into the generated error message
const errorMessageMaxLength = 80

const (
	contentTypeWire = "application/ssi-agent-wire"
	contentTypeJSON = "application/json"
)

var c = &http.Client{}

// sendAndWait makes the HTTP call and returns the response body. The timeout
// is from utils.Settings when ctx hasn't got a deadline.
func sendAndWait(
	ctx context.Context,
	method, urlStr, contentType string,
	msg []byte,
) (data []byte, err error) {
	defer err2.Handle(&err, func(err error) error {
		if vcxerr.KindOf(err) == vcxerr.Unknown {
			return vcxerr.Wrap(vcxerr.IOError, err, method+" "+urlStr)
		}
		return err
	})

	URL, err := url.Parse(urlStr)
	if err != nil || URL.Scheme == "" {
		return nil, vcxerr.Newf(vcxerr.InvalidURL, "bad URL %q", urlStr)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, utils.Settings.Timeout())
		defer cancel()
	}

	var body io.Reader
	if msg != nil {
		body = bytes.NewReader(msg)
	}
	request := try.To1(http.NewRequestWithContext(ctx, method, URL.String(), body))
	request.Close = true // deferred response.Body.Close isn't always enough
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	response := try.To1(c.Do(request))

	defer func() {
		closeErr := response.Body.Close()
		if closeErr != nil {
			glog.Warningln("body.Close: ", closeErr)
		}
	}()

	data = try.To1(io.ReadAll(response.Body))

	return checkHTTPStatus(response, data)
}

// checkHTTPStatus checks the status code and gets the server message
func checkHTTPStatus(response *http.Response, data []byte) ([]byte, error) {
	if response.StatusCode/100 != 2 {
		glog.Warning("http code:", response.Status)
		contentType := response.Header.Get("Content-type")
		// from our server: text/plain; charset=utf-8
		if strings.HasPrefix(contentType, "text/plain") {
			l := len(data)
			return nil, vcxerr.Newf(vcxerr.IOError, "%s: %s",
				response.Status, strings.TrimSpace(string(data[0:min(errorMessageMaxLength, l)])))
		}
		return nil, vcxerr.New(vcxerr.IOError, response.Status)
	}
	return data, nil
}
