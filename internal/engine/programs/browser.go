// Released under an MIT license. See LICENSE.

package programs

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/michaelmacinnis/logos/internal/engine/program"
	"github.com/michaelmacinnis/logos/internal/errors"
	"golang.org/x/net/proxy"
)

// Browser fetches pages. navigate sends the buffer, if any, as the body of
// a POST and replaces it with the response.
func Browser(client *http.Client, scheme string) program.Table {
	return program.Table{
		"navigate": func(ctx context.Context, r *program.Request) (*program.Result, error) {
			rest, ok := strings.CutPrefix(r.Argument, "to ")
			if !ok || strings.TrimSpace(rest) == "" {
				return nil, errors.New(errors.ArgumentError,
					"navigate takes \"to ADDRESS\", not %q", r.Argument)
			}

			url := scheme + "://" + strings.TrimSpace(rest)

			b, err := fetch(ctx, client, url, r.Buffer)
			if err != nil {
				return nil, errors.Wrap(errors.CollaboratorError, err, "navigate to %s", url)
			}

			return &program.Result{Buffer: b}, nil
		},
	}
}

// NewClient returns an HTTP client that honours the proxy environment
// variables, including ALL_PROXY for SOCKS5 proxies.
func NewClient(timeout time.Duration) *http.Client {
	dialer := proxy.FromEnvironmentUsing(&net.Dialer{Timeout: timeout})

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				if d, ok := dialer.(proxy.ContextDialer); ok {
					return d.DialContext(ctx, network, addr)
				}

				return dialer.Dial(network, addr)
			},
		},
	}
}

func fetch(ctx context.Context, client *http.Client, url, body string) (string, error) {
	method := http.MethodGet

	var data io.Reader
	if body != "" {
		method = http.MethodPost
		data = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, data)
	if err != nil {
		return "", err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return "", errors.New(errors.CollaboratorError, "%s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
