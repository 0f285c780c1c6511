package main

import (
	"github.com/lukeharte/wizard-arena/internal/config"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/storage"
	"github.com/lukeharte/wizard-arena/internal/wizardgen"
)

func loadConfigOrExit(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logging.Fatal("Invalid arena configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

// applyGenerationOverrides pushes config-level model and prompt overrides
// into the wizard generator.
func applyGenerationOverrides(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.ChatModel != "" {
		wizardgen.SetChatModel(cfg.ChatModel)
	}
	if cfg.WizardPromptTemplate != "" {
		wizardgen.SetWizardPromptTemplate(cfg.WizardPromptTemplate)
	}
	if cfg.SpellPromptTemplate != "" {
		wizardgen.SetSpellPromptTemplate(cfg.SpellPromptTemplate)
	}
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
