// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package digitalocean is a thin client for the parts of the
// DigitalOcean v2 API the kernel check needs: droplet listings and
// per-droplet kernel listings, both paginated.
package digitalocean

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/config"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/logging"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"
)

var (
	// ErrUnauthorized indicates the API rejected the credential.
	ErrUnauthorized = errors.New("credential rejected by the DigitalOcean API")

	// ErrDropletNotFound indicates no droplet carries the requested hostname.
	ErrDropletNotFound = errors.New("droplet not found")
)

type Client struct {
	baseURL string
	token   string
	perPage int
	http    *retryablehttp.Client
	logger  *zerolog.Logger
}

// NewClient builds an authenticated API client. Retries are disabled:
// the plugin runs on a polling interval and a failed invocation simply
// reports UNKNOWN, so the monitoring system owns the retry loop.
func NewClient(cfg *config.Settings, logger *zerolog.Logger) *Client {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.CheckRetry = func(_ context.Context, _ *http.Response, err error) (bool, error) {
		// every response, success or not, is handled by the caller
		return false, err
	}
	httpClient.Logger = logging.NewRetryableHTTPAdapter(logger)
	httpClient.HTTPClient = &http.Client{
		Timeout: cfg.DigitalOcean.Timeout,
	}

	return &Client{
		baseURL: cfg.DigitalOcean.URL,
		token:   cfg.DigitalOcean.Token,
		perPage: cfg.DigitalOcean.PerPage,
		http:    httpClient,
		logger:  logger,
	}
}

// ListDroplets returns every droplet on the account, accumulated
// across all pages in order.
func (c *Client) ListDroplets(ctx context.Context) ([]Droplet, error) {
	var droplets []Droplet

	it := c.newPages(fmt.Sprintf("%s/v2/droplets?per_page=%d", c.baseURL, c.perPage))
	for it.Next(ctx) {
		var page struct {
			Droplets []Droplet `json:"droplets"`
		}
		if err := json.Unmarshal(it.Body(), &page); err != nil {
			return nil, errors.Wrap(err, "decode droplets page")
		}
		droplets = append(droplets, page.Droplets...)
	}
	if err := it.Err(); err != nil {
		return nil, errors.Wrap(err, "list droplets")
	}

	c.logger.Debug().Int("count", len(droplets)).Msg("fetched droplets")
	return droplets, nil
}

// DropletByName finds the droplet with the given hostname, or
// ErrDropletNotFound.
func (c *Client) DropletByName(ctx context.Context, hostname string) (*Droplet, error) {
	droplets, err := c.ListDroplets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range droplets {
		if droplets[i].Name == hostname {
			return &droplets[i], nil
		}
	}
	return nil, errors.Wrapf(ErrDropletNotFound, "hostname %q", hostname)
}

// ListKernels returns every kernel offered for the droplet, accumulated
// across all pages in order.
func (c *Client) ListKernels(ctx context.Context, dropletID int64) ([]Kernel, error) {
	var kernels []Kernel

	it := c.newPages(fmt.Sprintf("%s/v2/droplets/%d/kernels?per_page=%d", c.baseURL, dropletID, c.perPage))
	for it.Next(ctx) {
		var page struct {
			Kernels []Kernel `json:"kernels"`
		}
		if err := json.Unmarshal(it.Body(), &page); err != nil {
			return nil, errors.Wrap(err, "decode kernels page")
		}
		kernels = append(kernels, page.Kernels...)
	}
	if err := it.Err(); err != nil {
		return nil, errors.Wrapf(err, "list kernels for droplet %d", dropletID)
	}

	c.logger.Debug().Int64("droplet_id", dropletID).Int("count", len(kernels)).Msg("fetched kernels")
	return kernels, nil
}

// get performs a single authenticated GET and returns the raw body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set(HeaderAuthorization, "Bearer "+c.token)
	req.Header.Set(HeaderContentType, ContentTypeJSON)

	c.logger.Info().Str("url", url).Msg("GET")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response from %s", url)
	}

	c.logger.Trace().Str("url", url).Int("status", resp.StatusCode).Bytes("body", body).Msg("response")

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.Wrapf(ErrUnauthorized, "GET %s returned %d", url, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, errors.Errorf("GET %s returned %d", url, resp.StatusCode)
	}

	return body, nil
}
