// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package digitalocean

// Kernel is a boot kernel the provider offers for a droplet. IDs are
// assigned monotonically, so a larger ID means a more recently
// introduced kernel.
type Kernel struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Droplet is a virtual machine instance. Kernel is the currently
// configured boot kernel and may be nil when the provider does not
// report one.
type Droplet struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Kernel *Kernel `json:"kernel"`
}
