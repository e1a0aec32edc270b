// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/digitalocean"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/domain/kernel"
)

var offered = []digitalocean.Kernel{
	{ID: 100, Name: "A"},
	{ID: 50, Name: "A"},
	{ID: 200, Name: "B"},
}

func TestSelect_OrdersComparableNewestFirst(t *testing.T) {
	sel := kernel.Select(digitalocean.Kernel{ID: 100, Name: "A"}, offered, kernel.BuildFilter("A"))

	require.Len(t, sel.Comparable, 2)
	assert.Equal(t, int64(100), sel.Comparable[0].ID)
	assert.Equal(t, int64(50), sel.Comparable[1].ID)
	require.NotNil(t, sel.Newest)
	assert.Equal(t, int64(100), sel.Newest.ID)
}

func TestSelect_CurrentIsNewest(t *testing.T) {
	sel := kernel.Select(digitalocean.Kernel{ID: 100, Name: "A"}, offered, kernel.BuildFilter("A"))
	assert.True(t, sel.UpToDate())
}

func TestSelect_NewerAvailable(t *testing.T) {
	sel := kernel.Select(digitalocean.Kernel{ID: 50, Name: "A"}, offered, kernel.BuildFilter("A"))

	assert.False(t, sel.UpToDate())
	require.NotNil(t, sel.Newest)
	assert.Equal(t, int64(100), sel.Newest.ID)
	assert.Equal(t, "A", sel.Newest.Name)
}

func TestSelect_EmptyComparableSet(t *testing.T) {
	sel := kernel.Select(digitalocean.Kernel{ID: 1, Name: "Z"}, offered, kernel.BuildFilter("Z"))

	assert.Empty(t, sel.Comparable)
	assert.Nil(t, sel.Newest)
	assert.False(t, sel.UpToDate())
}

func TestSelect_NoOfferedKernels(t *testing.T) {
	sel := kernel.Select(digitalocean.Kernel{ID: 1, Name: "A"}, nil, kernel.BuildFilter("A"))
	assert.Nil(t, sel.Newest)
	assert.False(t, sel.UpToDate())
}

func TestSelect_RealWorldUbuntuListing(t *testing.T) {
	current := digitalocean.Kernel{ID: 7515, Name: "Ubuntu 16.04 x64 vmlinuz-4.4.0-31-generic"}
	listing := []digitalocean.Kernel{
		{ID: 7515, Name: "Ubuntu 16.04 x64 vmlinuz-4.4.0-31-generic"},
		{ID: 8123, Name: "Ubuntu 16.04 x64 vmlinuz-4.4.0-85-generic"},
		{ID: 8124, Name: "Ubuntu 16.04 x64 vmlinuz-4.4.0-85-generic-docker-memlimit"},
		{ID: 9001, Name: "Ubuntu 14.04 x64 vmlinuz-4.4.0-98-generic"},
		{ID: 6001, Name: "CentOS 7.2 x64 vmlinuz-3.10.0-327"},
	}

	sel := kernel.Select(current, listing, kernel.BuildFilter(current.Name))

	require.Len(t, sel.Comparable, 2)
	assert.Equal(t, int64(8123), sel.Comparable[0].ID)
	assert.Equal(t, int64(7515), sel.Comparable[1].ID)
	assert.False(t, sel.UpToDate())
	assert.Equal(t, "Ubuntu 16.04 x64 vmlinuz-4.4.0-85-generic", sel.Newest.Name)
}
