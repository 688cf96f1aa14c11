// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package container

import (
	"fmt"
	"github.com/steadybit/docker-container/config"
	"github.com/steadybit/docker-container/pkg/container/docker"
	"github.com/steadybit/docker-container/pkg/container/types"
	"os"
)

var socketExists = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func AutoDetect() (runtime types.Runtime) {
	for _, r := range types.AllRuntimes {
		if socketExists(r.DefaultSocket()) {
			return r
		}
	}
	return ""
}

func NewClient() (types.Client, error) {
	runtime := types.Runtime(config.Config.ContainerRuntime)
	socket := config.Config.ContainerSocket

	if runtime == "" {
		runtime = AutoDetect()
	}

	if runtime == "" {
		return nil, fmt.Errorf("failed to detect container runtime, please specify")
	}

	if socket == "" {
		socket = runtime.DefaultSocket()
	}

	switch runtime {
	case types.RuntimeDocker, types.RuntimePodman:
		return docker.New(socket, runtime)
	default:
		return nil, fmt.Errorf("unsupported container runtime: %s", runtime)
	}
}
