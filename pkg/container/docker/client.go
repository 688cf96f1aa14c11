// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package docker

import (
	"context"
	"fmt"
	"github.com/docker/docker/client"
	"github.com/steadybit/docker-container/pkg/container/types"
	"github.com/steadybit/docker-container/pkg/dockercontainer"
	"strings"
)

// Client implements the types.Client interface for Docker and Docker compatible engines
type Client struct {
	docker  *client.Client
	runtime types.Runtime
}

func (c *Client) Socket() string {
	return c.docker.DaemonHost()
}

func (c *Client) Runtime() types.Runtime {
	return c.runtime
}

func (c *Client) Engine() dockercontainer.Engine {
	return c.docker
}

func New(address string, runtime types.Runtime) (types.Client, error) {
	dockerClient, err := client.NewClientWithOpts(client.WithHost(withScheme(address)), client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	return &Client{docker: dockerClient, runtime: runtime}, nil
}

func withScheme(address string) string {
	if !strings.Contains(address, "://") {
		return "unix://" + address
	}
	return address
}

func (c *Client) Version(ctx context.Context) (string, error) {
	version, err := c.docker.ServerVersion(ctx)
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (c *Client) Close() error {
	return c.docker.Close()
}
