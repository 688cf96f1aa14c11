// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package dockercontainer

import (
	"context"
	"errors"
	"fmt"
	dtypes "github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog/log"
	"io"
)

var ErrAlreadyRunning = errors.New("container already running")

// DockerContainer runs a single named container from an image tag.
type DockerContainer struct {
	engine        Engine
	imageTag      string
	containerName string
	id            string
	running       bool
}

func New(engine Engine, imageTag string, containerName string) *DockerContainer {
	return &DockerContainer{
		engine:        engine,
		imageTag:      imageTag,
		containerName: containerName,
	}
}

func (c *DockerContainer) ImageTag() string {
	return c.imageTag
}

func (c *DockerContainer) Name() string {
	return c.containerName
}

// ID of the created container, empty until Run created it.
func (c *DockerContainer) ID() string {
	return c.id
}

func (c *DockerContainer) IsRunning() bool {
	return c.running
}

// PullIfNeeded pulls the image unless the engine already has an image with that tag.
// The pull outcome is not verified.
func (c *DockerContainer) PullIfNeeded(ctx context.Context) error {
	images, err := c.engine.ImageList(ctx, dtypes.ImageListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", c.imageTag)),
	})
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}

	if len(images) > 0 {
		log.Debug().Str("image", c.imageTag).Int("matches", len(images)).Msg("Image present, skipping pull.")
		return nil
	}

	log.Info().Str("image", c.imageTag).Msg("Pulling image.")
	reader, err := c.engine.ImagePull(ctx, c.imageTag, dtypes.ImagePullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image %s: %w", c.imageTag, err)
	}
	defer func() { _ = reader.Close() }()

	// the daemon aborts the pull when the progress stream is closed early
	if _, err := io.Copy(io.Discard, reader); err != nil {
		log.Warn().Err(err).Str("image", c.imageTag).Msg("Failed to read pull progress.")
	}
	return nil
}

// Run creates the container and starts it.
func (c *DockerContainer) Run(ctx context.Context, opts RunOptions) error {
	if c.running {
		return ErrAlreadyRunning
	}

	payload := BuildPayload(c.containerName, c.imageTag, opts)
	created, err := c.engine.ContainerCreate(ctx, payload.Config, payload.HostConfig, nil, nil, payload.Name)
	if err != nil {
		return fmt.Errorf("failed to create container %s: %w", c.containerName, err)
	}
	for _, warning := range created.Warnings {
		log.Warn().Str("container", c.containerName).Msg(warning)
	}
	c.id = created.ID

	if err := c.engine.ContainerStart(ctx, created.ID, dtypes.ContainerStartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", c.containerName, err)
	}
	c.running = true

	log.Info().
		Str("container", c.containerName).
		Str("id", created.ID).
		Str("image", c.imageTag).
		Msg("Container started.")
	return nil
}
