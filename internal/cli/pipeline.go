package cli

import (
	"fmt"
	"log/slog"

	"github.com/kolah/swagclient/internal/codegen"
	"github.com/kolah/swagclient/internal/config"
	"github.com/kolah/swagclient/internal/loader"
	"github.com/spf13/cobra"
)

// buildResult loads the configured document and resolves it into the model
// and service graphs. Diagnostics are logged before returning.
func buildResult(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*codegen.Result, error) {
	result, err := loader.Load(cmd.Context(), cfg.Spec, loader.Settings{
		Timeout: cfg.Fetch.Timeout,
		Retries: cfg.Fetch.Retries,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		logger.Warn(w, "source", result.Source)
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return nil, fmt.Errorf("transforming spec: %w", err)
	}

	logger.Debug("loaded document",
		"swagger", result.Version,
		"title", spec.Info.Title,
		"version", spec.Info.Version,
		"definitions", len(spec.Definitions),
		"paths", len(spec.Paths),
	)

	built, err := codegen.Build(spec, codegen.BuildOptions{
		IncludeTags:           cfg.IncludeTags,
		PruneUnusedModels:     cfg.IgnoreUnusedModels,
		TypeOverrideExtension: cfg.TypeOverrideExtension,
	})
	if err != nil {
		return nil, err
	}

	built.Diagnostics.Log(logger)
	logger.Debug("resolved document", "models", built.Models.Len(), "services", built.Services.Len())

	return built, nil
}
