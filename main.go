// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 Steadybit GmbH

package main

import (
	"context"
	"github.com/rs/zerolog/log"
	"github.com/steadybit/docker-container/config"
	"github.com/steadybit/docker-container/pkg/container"
	"github.com/steadybit/docker-container/pkg/container/types"
	"github.com/steadybit/docker-container/pkg/dockercontainer"
	"github.com/steadybit/extension-kit/extbuild"
	"github.com/steadybit/extension-kit/extlogging"
)

func main() {
	extlogging.InitZeroLog()

	extbuild.PrintBuildInformation()

	config.ParseConfiguration()
	config.ValidateConfiguration()

	client, err := container.NewClient()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create container engine client.")
	}
	defer func(client types.Client) {
		err := client.Close()
		if err != nil {
			log.Error().Err(err).Msg("Failed to close container engine client.")
		}
	}(client)

	ctx := context.Background()
	version, _ := client.Version(ctx)
	log.Info().
		Str("engine", string(client.Runtime())).
		Str("version", version).
		Str("socket", client.Socket()).
		Msg("Container runtime client initialized.")

	c := dockercontainer.New(client.Engine(), config.Config.Image, config.Config.Name)
	if !config.Config.SkipPull {
		if err := c.PullIfNeeded(ctx); err != nil {
			log.Fatal().Err(err).Str("image", c.ImageTag()).Msg("Failed to pull image.")
		}
	}

	if err := c.Run(ctx, config.Config.RunOptions()); err != nil {
		log.Fatal().Err(err).Str("container", c.Name()).Msg("Failed to run container.")
	}

	log.Info().
		Str("container", c.Name()).
		Str("id", c.ID()).
		Bool("running", c.IsRunning()).
		Msg("Done.")
}
