package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Defaults applied when the config file omits a key.
const (
	DefaultServerAddress = ":8080"
	DefaultDBPath        = "./data/arena.db"
	DefaultActionTimeout = 90 * time.Second
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	DBPath string `json:"db_path"`
	// Seconds a player has to submit an action before the match times out.
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
	// Optional OpenAI overrides.
	ChatModel string `json:"chat_model"`
	// Optional prompt template overrides. When omitted the built-in
	// prompts are used.
	WizardPrompt string `json:"wizard_prompt"`
	SpellPrompt  string `json:"spell_prompt"`
}

// Config holds the loaded server configuration.
type Config struct {
	ServerAddress string
	DBPath        string
	ActionTimeout time.Duration
	ChatModel     string
	// Prompt template overrides; empty means use the built-in prompt.
	WizardPromptTemplate string
	SpellPromptTemplate  string
}

// Load reads the configuration file at path. A missing file is not an
// error: the defaults support running with env vars only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ServerAddress: DefaultServerAddress,
		DBPath:        DefaultDBPath,
		ActionTimeout: DefaultActionTimeout,
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.DBPath != "" {
		cfg.DBPath = rc.DBPath
	}
	if rc.ActionTimeoutSeconds > 0 {
		cfg.ActionTimeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}
	cfg.ChatModel = rc.ChatModel
	cfg.WizardPromptTemplate = rc.WizardPrompt
	cfg.SpellPromptTemplate = rc.SpellPrompt
	return cfg, nil
}
