package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/resumepilot/resumepilot/internal/ai"
	"github.com/resumepilot/resumepilot/internal/ai/gemini"
	"github.com/resumepilot/resumepilot/internal/identity"
	"github.com/resumepilot/resumepilot/internal/logger"
	"github.com/resumepilot/resumepilot/internal/secrets"
	"github.com/resumepilot/resumepilot/internal/store"
	"github.com/resumepilot/resumepilot/internal/usage"
)

// appDeps wires the shared collaborators: the persisted store, identity
// manager, usage gate and (when needed) the Gemini assistant.
type appDeps struct {
	logger    *zap.Logger
	store     store.Store
	identity  *identity.Manager
	gate      *usage.Gate
	assistant ai.Assistant
}

// newAppDeps builds the dependency set. withAssistant controls whether the
// Gemini client is constructed; plain state commands (login, usage) do not
// need a credential.
func newAppDeps(ctx context.Context, withAssistant bool) *appDeps {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	st, err := openStore(config)
	if err != nil {
		zl.Fatal("opening the state store", zap.Error(err))
	}

	deps := &appDeps{
		logger:   zl,
		store:    st,
		identity: identity.New(st),
		gate:     usage.NewGate(usage.NewLedger(st)),
	}

	if withAssistant {
		assistant, err := newAssistant(ctx, config, zl)
		if err != nil {
			zl.Fatal(
				"configuring the gemini assistant",
				zap.Error(err),
				zap.String("hint", "set GEMINI_API_KEY or the 'ai.gemini.api-key-file' key in the configuration file"),
			)
		}
		deps.assistant = assistant
	}

	return deps
}

func openStore(config *Config) (store.Store, error) {
	path := config.StorePath
	if path == "" {
		var err error
		path, err = store.DefaultPath(app)
		if err != nil {
			return nil, err
		}
	}

	return store.NewFile(path)
}

// newAssistant resolves the Gemini credential and builds the assistant. A
// missing credential fails here, before any gate check or network attempt.
func newAssistant(ctx context.Context, config *Config, zl *zap.Logger) (ai.Assistant, error) {
	var gcfg GeminiConfig
	if config.AI != nil && config.AI.Gemini != nil {
		gcfg = *config.AI.Gemini
	}
	if gcfg.APIKey == "" {
		gcfg.APIKey = viper.GetString("ai.gemini.api-key")
	}
	if gcfg.APIKeyFile == "" {
		gcfg.APIKeyFile = viper.GetString("ai.gemini.api-key-file")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gcfg.APIKey,
		File:  gcfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	genLogger := zl.With(
		zap.String("provider", "gemini"),
		zap.String("model", gcfg.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAssistant(generator, genLogger, gcfg.MaxLogLength), nil
}

// passGate enforces the gate contract shared by every AI-backed command:
// check first; when denied, surface the reason and stop before the provider is
// touched; when allowed, charge one unit immediately. The unit is spent even
// if the provider call that follows fails.
func (d *appDeps) passGate() (string, bool) {
	token, err := d.identity.Current()
	if err != nil {
		d.logger.Fatal("reading identity", zap.Error(err))
	}

	decision, err := d.gate.CheckAllowed(token)
	if err != nil {
		d.logger.Fatal("checking the daily limit", zap.Error(err))
	}

	if !decision.Allowed {
		d.logger.Warn("action blocked", zap.String("reason", decision.Reason))
		printDenied(decision.Reason)
		return token, false
	}

	if err := d.gate.Consume(token); err != nil {
		// Best-effort accounting: the action proceeds regardless.
		d.logger.Warn("recording usage", zap.Error(err))
	}

	return token, true
}

func printDenied(reason string) {
	color.New(color.FgRed, color.Bold).Printf("Action not allowed: %s\n", reason)

	switch reason {
	case usage.ReasonSignInRequired:
		fmt.Printf("Run `%s login <email>` first.\n", app)
	case usage.ReasonDailyLimitReached:
		fmt.Printf("All %d daily actions are spent. Try again tomorrow!\n", usage.DailyLimit)
	}
}
