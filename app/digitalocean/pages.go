// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package digitalocean

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// pages walks a paginated listing one GET at a time. The sequence is
// finite and non-restartable: each Next fetches the following page,
// and once a fetch fails or the envelope carries no next link the
// iterator stays exhausted. Consumers decode Body into their resource
// slice.
type pages struct {
	client *Client
	next   string
	body   []byte
	err    error
}

func (c *Client) newPages(url string) *pages {
	return &pages{client: c, next: url}
}

// Next fetches the next page. It returns false once the listing is
// exhausted or a fetch failed; check Err afterwards.
func (p *pages) Next(ctx context.Context) bool {
	if p.err != nil || p.next == "" {
		return false
	}

	body, err := p.client.get(ctx, p.next)
	if err != nil {
		p.err = err
		return false
	}
	p.body = body

	var envelope struct {
		Links struct {
			Pages struct {
				Next string `json:"next"`
			} `json:"pages"`
		} `json:"links"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		p.err = errors.Wrap(err, "decode pagination links")
		return false
	}
	p.next = envelope.Links.Pages.Next

	return true
}

// Body returns the raw body of the page fetched by the last successful Next.
func (p *pages) Body() []byte {
	return p.body
}

func (p *pages) Err() error {
	return p.err
}
