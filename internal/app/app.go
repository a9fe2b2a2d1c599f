// Package app wires configuration, storage, services, and handlers into a
// runnable application.
package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/handlers"
	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/render"
	"github.com/lumaacademy/atelier/internal/services/agent"
	"github.com/lumaacademy/atelier/internal/services/events"
	"github.com/lumaacademy/atelier/internal/services/llm"
	"github.com/lumaacademy/atelier/internal/services/stats"
	badgerstorage "github.com/lumaacademy/atelier/internal/storage/badger"
	"github.com/lumaacademy/atelier/internal/theme"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Services
	EventService interfaces.EventService
	LLMService   interfaces.LLMService
	AgentService interfaces.AgentService
	StatsService *stats.Service
	Renderer     *render.Renderer

	// Handlers
	APIHandler     *handlers.APIHandler
	PageHandler    *handlers.PageHandler
	ContentHandler *handlers.ContentHandler
	DesignHandler  *handlers.DesignHandler
	ChatHandler    *handlers.ChatHandler
	CourseHandler  *handlers.CourseHandler
	WSHandler      *handlers.WebSocketHandler
}

// New creates and wires the application
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	if err := a.initStorage(); err != nil {
		return nil, err
	}
	if err := a.initServices(); err != nil {
		return nil, err
	}
	if err := a.initHandlers(); err != nil {
		return nil, err
	}

	logger.Info().Msg("Application initialized")
	return a, nil
}

func (a *App) initStorage() error {
	manager, err := badgerstorage.NewManager(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = manager
	return nil
}

func (a *App) initServices() error {
	a.EventService = events.NewService(a.Logger)

	llmService, err := llm.NewLLMService(a.Config, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM service: %w", err)
	}
	a.LLMService = llmService

	agentService, err := agent.NewService(
		a.LLMService,
		a.StorageManager.PageStorage(),
		a.StorageManager.ChatStorage(),
		a.EventService,
		&a.Config.Agent,
		a.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize agent service: %w", err)
	}
	a.AgentService = agentService

	a.StatsService = stats.NewService(a.StorageManager.PageStorage(), &a.Config.Stats, a.Logger)
	if err := a.StatsService.Start(); err != nil {
		return fmt.Errorf("failed to start stats service: %w", err)
	}

	renderer, err := render.NewRenderer(a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	a.Renderer = renderer

	return nil
}

func (a *App) initHandlers() error {
	presets, err := theme.LoadPresets(a.Config.Themes.PresetsPath)
	if err != nil {
		a.Logger.Warn().Err(err).Str("path", a.Config.Themes.PresetsPath).Msg("Failed to load theme presets, using builtins")
		presets, _ = theme.LoadPresets("")
	}

	a.APIHandler = handlers.NewAPIHandler()
	a.PageHandler = handlers.NewPageHandler(
		a.StorageManager.PageStorage(),
		a.StorageManager.CourseStorage(),
		a.Renderer,
		a.StatsService,
		a.EventService,
		a.Logger,
	)
	a.ContentHandler = handlers.NewContentHandler(
		a.StorageManager.PageStorage(),
		a.AgentService,
		a.EventService,
		a.Logger,
	)
	a.DesignHandler = handlers.NewDesignHandler(
		a.StorageManager.PageStorage(),
		presets,
		a.EventService,
		a.Logger,
	)
	a.ChatHandler = handlers.NewChatHandler(a.AgentService, a.LLMService, a.Logger)
	a.CourseHandler = handlers.NewCourseHandler(a.StorageManager.CourseStorage(), a.Logger)
	a.WSHandler = handlers.NewWebSocketHandler(a.EventService, a.Logger)

	return nil
}

// Close shuts down all components in reverse dependency order
func (a *App) Close() error {
	a.Logger.Info().Msg("Shutting down application")

	if a.WSHandler != nil {
		a.WSHandler.Close()
	}
	if a.StatsService != nil {
		a.StatsService.Stop()
	}
	if a.LLMService != nil {
		if err := a.LLMService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("LLM service close failed")
		}
	}
	if a.EventService != nil {
		if err := a.EventService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Event service close failed")
		}
	}
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}

	a.Logger.Info().Msg("Application shutdown complete")
	return nil
}

// HealthCheck verifies core components are operational
func (a *App) HealthCheck(ctx context.Context) error {
	if a.StorageManager == nil {
		return fmt.Errorf("storage manager not initialized")
	}
	return nil
}
