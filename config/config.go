// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package config

import (
	"flag"
	"fmt"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	dockerparser "github.com/novln/docker-parser"
	"github.com/rs/zerolog/log"
	"github.com/steadybit/docker-container/pkg/dockercontainer"
	"os"
	"strconv"
	"strings"
)

type Specification struct {
	ContainerSocket  string            `json:"containerSocket" split_words:"true" required:"false"`
	ContainerRuntime string            `json:"containerRuntime" split_words:"true" required:"false"`
	Image            string            `json:"image" required:"false"`
	Name             string            `json:"name" required:"false"`
	Ports            []string          `json:"ports" required:"false"`   // from:to
	Env              map[string]string `json:"env" required:"false"`     // key:value
	Links            map[string]string `json:"links" required:"false"`   // container:alias
	Volumes          map[string]string `json:"volumes" required:"false"` // guest:host
	SkipPull         bool              `json:"skipPull" split_words:"true" required:"false" default:"false"`
}

var (
	Config Specification
)

func ParseConfiguration() {
	if err := envconfig.Process("docker_container", &Config); err != nil {
		log.Fatal().Err(err).Msgf("Failed to parse configuration from environment.")
	}

	if err := parseArgs(&Config, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msgf("Failed to parse command line arguments.")
	}
}

func parseArgs(cfg *Specification, args []string) error {
	f := flag.NewFlagSet("config", flag.ContinueOnError)
	f.StringVar(&cfg.ContainerSocket, "socket", cfg.ContainerSocket, "Socket or URL of the container engine")
	f.StringVar(&cfg.ContainerRuntime, "runtime", cfg.ContainerRuntime, "Container engine (docker, podman), detected when empty")
	f.StringVar(&cfg.Image, "image", cfg.Image, "Image tag to run")
	f.StringVar(&cfg.Name, "name", cfg.Name, "Name of the container")
	f.BoolVar(&cfg.SkipPull, "skipPull", cfg.SkipPull, "Never pull the image")
	f.Func("port", "Bind container port to host port, from:to (repeatable)", func(s string) error {
		cfg.Ports = append(cfg.Ports, s)
		return nil
	})
	f.Func("env", "Environment variable, key=value (repeatable)", pairInto(&cfg.Env, "=", false))
	f.Func("link", "Link to another container, container:alias (repeatable)", pairInto(&cfg.Links, ":", false))
	f.Func("volume", "Bind mount, hostPath:guestPath (repeatable)", pairInto(&cfg.Volumes, ":", true))

	return f.Parse(args)
}

func pairInto(m *map[string]string, sep string, swap bool) func(string) error {
	return func(s string) error {
		k, v, ok := strings.Cut(s, sep)
		if !ok || k == "" {
			return fmt.Errorf("expected <a>%s<b>, got %q", sep, s)
		}
		if swap {
			k, v = v, k
		}
		if *m == nil {
			*m = map[string]string{}
		}
		(*m)[k] = v
		return nil
	}
}

func ValidateConfiguration() {
	if err := validate(&Config); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration.")
	}
}

func validate(cfg *Specification) error {
	if cfg.Image == "" {
		return fmt.Errorf("no image given")
	}

	ref, err := dockerparser.Parse(cfg.Image)
	if err != nil {
		return fmt.Errorf("invalid image %q: %w", cfg.Image, err)
	}
	log.Debug().
		Str("registry", ref.Registry()).
		Str("repository", ref.Repository()).
		Str("tag", ref.Tag()).
		Msg("Image reference parsed.")

	if cfg.Name == "" {
		cfg.Name = "container-" + strings.Split(uuid.NewString(), "-")[0]
		log.Info().Str("name", cfg.Name).Msg("No container name given, generated one.")
	}

	if _, err := parsePorts(cfg.Ports); err != nil {
		return err
	}

	if cfg.SkipPull {
		log.Info().Msg("Image pull is disabled. The image must be present on the engine.")
	}
	return nil
}

func parsePorts(ports []string) ([]dockercontainer.PortMapping, error) {
	var result []dockercontainer.PortMapping
	for _, p := range ports {
		from, to, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("invalid port mapping %q, expected from:to", p)
		}
		fromPort, err := strconv.ParseUint(from, 10, 16)
		if err != nil || fromPort == 0 {
			return nil, fmt.Errorf("invalid container port in %q", p)
		}
		toPort, err := strconv.ParseUint(to, 10, 16)
		if err != nil || toPort == 0 {
			return nil, fmt.Errorf("invalid host port in %q", p)
		}
		result = append(result, dockercontainer.PortMapping{From: uint16(fromPort), To: uint16(toPort)})
	}
	return result, nil
}

// RunOptions of the configured container. The configuration must have been validated.
func (s Specification) RunOptions() dockercontainer.RunOptions {
	ports, _ := parsePorts(s.Ports)
	return dockercontainer.RunOptions{
		Ports:   ports,
		Env:     s.Env,
		Links:   s.Links,
		Volumes: s.Volumes,
	}
}
