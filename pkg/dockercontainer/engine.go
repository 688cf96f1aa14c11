// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package dockercontainer

import (
	"context"
	dtypes "github.com/docker/docker/api/types"
	dcontainer "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"io"
)

// Engine is the part of the Docker API client used by DockerContainer.
// *client.Client from github.com/docker/docker/client satisfies it.
type Engine interface {
	ImageList(ctx context.Context, options dtypes.ImageListOptions) ([]dtypes.ImageSummary, error)
	ImagePull(ctx context.Context, ref string, options dtypes.ImagePullOptions) (io.ReadCloser, error)
	ContainerCreate(ctx context.Context, config *dcontainer.Config, hostConfig *dcontainer.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (dcontainer.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options dtypes.ContainerStartOptions) error
}
