// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package types

import (
	"context"
	"github.com/steadybit/docker-container/pkg/dockercontainer"
)

const (
	RuntimeDocker       Runtime = "docker"
	DefaultSocketDocker         = "/var/run/docker.sock"
	RuntimePodman       Runtime = "podman"
	DefaultSocketPodman         = "/run/podman/podman.sock"
)

var (
	AllRuntimes = []Runtime{RuntimeDocker, RuntimePodman}
)

type Runtime string

// Client is a connection to an engine speaking the Docker remote API.
type Client interface {
	Engine() dockercontainer.Engine
	Version(ctx context.Context) (string, error)
	Close() error
	Runtime() Runtime
	Socket() string
}

func (runtime Runtime) DefaultSocket() string {
	switch runtime {
	case RuntimeDocker:
		return DefaultSocketDocker
	case RuntimePodman:
		return DefaultSocketPodman
	}
	return ""
}
