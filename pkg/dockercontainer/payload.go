// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package dockercontainer

import (
	"fmt"
	dcontainer "github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"sort"
	"strconv"
)

// PortMapping binds container port From (tcp) to host port To.
type PortMapping struct {
	From uint16
	To   uint16
}

type RunOptions struct {
	Ports []PortMapping
	Env   map[string]string
	// Links maps the name of the linked container to its alias inside this one.
	Links map[string]string
	// Volumes maps a guest path to the host path bind mounted there.
	Volumes map[string]string
}

// Payload is the container create request sent to the engine.
type Payload struct {
	Name       string
	Config     *dcontainer.Config
	HostConfig *dcontainer.HostConfig
}

// BuildPayload translates the run options into a create request. Fields stay
// nil unless the corresponding option is set; map derived slices are ordered by key.
func BuildPayload(name string, imageTag string, opts RunOptions) Payload {
	config := &dcontainer.Config{
		Image: imageTag,
	}
	hostConfig := &dcontainer.HostConfig{}

	if len(opts.Ports) > 0 {
		config.ExposedPorts = nat.PortSet{}
		hostConfig.PortBindings = nat.PortMap{}
		for _, p := range opts.Ports {
			port := nat.Port(fmt.Sprintf("%d/tcp", p.From))
			config.ExposedPorts[port] = struct{}{}
			hostConfig.PortBindings[port] = append(hostConfig.PortBindings[port], nat.PortBinding{HostPort: strconv.Itoa(int(p.To))})
		}
	}

	for _, k := range sortedKeys(opts.Env) {
		config.Env = append(config.Env, fmt.Sprintf("%s=%s", k, opts.Env[k]))
	}

	for _, source := range sortedKeys(opts.Links) {
		hostConfig.Links = append(hostConfig.Links, fmt.Sprintf("%s:%s", source, opts.Links[source]))
	}

	if len(opts.Volumes) > 0 {
		config.Volumes = map[string]struct{}{}
		for _, guest := range sortedKeys(opts.Volumes) {
			config.Volumes[guest] = struct{}{}
			hostConfig.Binds = append(hostConfig.Binds, fmt.Sprintf("%s:%s", opts.Volumes[guest], guest))
		}
	}

	return Payload{Name: name, Config: config, HostConfig: hostConfig}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
