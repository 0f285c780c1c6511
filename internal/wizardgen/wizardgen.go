// Package wizardgen turns a freeform player description into a playable
// wizard via two OpenAI chat-completions calls: one for the stat block and
// one for the spell loadout. Results are cached in the repository keyed by
// the canonical description key, and concurrent requests for the same
// description are collapsed through singleflight.
package wizardgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/dedupe"
	"github.com/lukeharte/wizard-arena/internal/game"
	"github.com/lukeharte/wizard-arena/internal/keys"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/prompts"
	"github.com/lukeharte/wizard-arena/internal/storage"
)

// ErrInvalidGeneration reports a model response that parsed but failed
// validation (bad elements, out-of-range stats, no damage spell).
var ErrInvalidGeneration = errors.New("generated wizard failed validation")

// chatModel can be overridden at application startup from configuration.
var chatModel = constants.OpenAIChatModel

// SetChatModel sets the chat model used for generation calls. Call from
// main after loading configuration.
func SetChatModel(model string) {
	if m := strings.TrimSpace(model); m != "" {
		chatModel = m
	}
}

// Prompt overrides, settable from configuration.
var (
	wizardPrompt = prompts.WizardGeneratorSystemPrompt
	spellPrompt  = prompts.SpellGeneratorSystemPrompt
)

// SetWizardPromptTemplate overrides the stat generation system prompt.
func SetWizardPromptTemplate(t string) {
	if s := strings.TrimSpace(t); s != "" {
		wizardPrompt = s
	}
}

// SetSpellPromptTemplate overrides the spell generation system prompt.
func SetSpellPromptTemplate(t string) {
	if s := strings.TrimSpace(t); s != "" {
		spellPrompt = s
	}
}

// callChat invokes the OpenAI Chat Completions API with a system and user
// message and returns the raw assistant content.
func callChat(system, user string, maxTokens int) (string, error) {
	apiKey := os.Getenv(constants.EnvOpenAIAPIKey)
	if apiKey == "" {
		return "", fmt.Errorf("%s not set", constants.EnvOpenAIAPIKey)
	}

	payload := map[string]interface{}{
		"model": chatModel,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"max_completion_tokens": maxTokens,
		"service_tier":          "default",
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", constants.OpenAIBaseURL+constants.OpenAIChatCompletionsPath, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai error: %d %s", resp.StatusCode, string(body))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// extractJSON strips markdown fences the model sometimes wraps around its
// output and trims to the outermost JSON value.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func generate(description string) (*game.Wizard, error) {
	statsRaw, err := callChat(wizardPrompt, description, 400)
	if err != nil {
		return nil, err
	}
	statsJSON := extractJSON(statsRaw)

	var w game.Wizard
	if err := json.Unmarshal([]byte(statsJSON), &w); err != nil {
		return nil, fmt.Errorf("failed to parse wizard stats: %w", err)
	}
	if err := ValidateStats(&w); err != nil {
		return nil, err
	}

	spellsRaw, err := callChat(spellPrompt, prompts.SpellUserPrompt(description, statsJSON), 700)
	if err != nil {
		return nil, err
	}
	var spells []game.Spell
	if err := json.Unmarshal([]byte(extractJSON(spellsRaw)), &spells); err != nil {
		return nil, fmt.Errorf("failed to parse spells: %w", err)
	}
	if err := ValidateSpells(spells); err != nil {
		return nil, err
	}
	w.Spells = spells
	return &w, nil
}

// ValidateStats checks a generated stat block: a name, two distinct valid
// elements and all five ratings in [0, 1].
func ValidateStats(w *game.Wizard) error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGeneration)
	}
	if !w.PrimaryElement.Valid() || !w.SecondaryElement.Valid() {
		return fmt.Errorf("%w: unknown element", ErrInvalidGeneration)
	}
	if w.PrimaryElement == w.SecondaryElement {
		return fmt.Errorf("%w: primary and secondary elements must differ", ErrInvalidGeneration)
	}
	for _, stat := range []float64{w.Attack, w.Defense, w.Health, w.Healing, w.Arcane} {
		if stat < 0 || stat > 1 {
			return fmt.Errorf("%w: stat out of range", ErrInvalidGeneration)
		}
	}
	return nil
}

// ValidateSpells checks a generated loadout: exactly four spells, each
// well-formed, with at least one damage spell.
func ValidateSpells(spells []game.Spell) error {
	if len(spells) != 4 {
		return fmt.Errorf("%w: expected 4 spells, got %d", ErrInvalidGeneration, len(spells))
	}
	damage := 0
	for _, s := range spells {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: spell missing name", ErrInvalidGeneration)
		}
		if !s.Type.Valid() {
			return fmt.Errorf("%w: unknown spell type %q", ErrInvalidGeneration, s.Type)
		}
		if !s.Element.Valid() {
			return fmt.Errorf("%w: unknown spell element %q", ErrInvalidGeneration, s.Element)
		}
		if s.Strength <= 0 || s.Strength > 1 {
			return fmt.Errorf("%w: spell strength out of range", ErrInvalidGeneration)
		}
		if s.Type == game.SpellDamage {
			damage++
		}
	}
	if damage == 0 {
		return fmt.Errorf("%w: loadout has no damage spell", ErrInvalidGeneration)
	}
	return nil
}

// GetOrCreateWizard checks the repository for a cached build of the given
// description; if not found, it calls OpenAI to generate one and stores it.
// It returns the wizard, the source ("db"|"openai"), and an error if
// generation failed.
func GetOrCreateWizard(repo storage.Repository, description string) (*game.Wizard, string, error) {
	key := keys.WizardKeyFromDescription(description)

	if key != "" {
		if gw, err := repo.GetGeneratedWizardByKey(key); err == nil && gw != nil && gw.WizardJSON != "" {
			var w game.Wizard
			if err := json.Unmarshal([]byte(gw.WizardJSON), &w); err == nil {
				logging.Info("wizard cache hit", logging.Fields{constants.LogFieldKey: key, constants.LogFieldName: w.Name, constants.LogFieldSource: "db"})
				return &w, "db", nil
			}
		}
	}

	sfKey := key
	if sfKey == "" {
		sfKey = description
	}

	ch := dedupe.WizardGroup.DoChan(sfKey, func() (interface{}, error) {
		// Re-check the cache inside singleflight in case another
		// goroutine saved the wizard before we got here.
		if key != "" {
			if gw, err := repo.GetGeneratedWizardByKey(key); err == nil && gw != nil && gw.WizardJSON != "" {
				var w game.Wizard
				if err := json.Unmarshal([]byte(gw.WizardJSON), &w); err == nil {
					return &w, nil
				}
			}
		}

		w, err := generate(description)
		if err != nil {
			logging.Error("wizard generation failed", err, logging.Fields{constants.LogFieldKey: sfKey})
			return nil, err
		}
		logging.Info("wizard generated", logging.Fields{constants.LogFieldKey: sfKey, constants.LogFieldName: w.Name})

		if key != "" {
			b, _ := json.Marshal(w)
			if err := repo.SaveGeneratedWizard(&storage.GeneratedWizard{
				DescriptionKey: key,
				Description:    description,
				WizardJSON:     string(b),
			}); err != nil {
				logging.Error("failed to save generated wizard", err, logging.Fields{constants.LogFieldKey: key})
			}
		}
		return w, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, "openai_error", r.Err
		}
		w := r.Val.(*game.Wizard)
		return w, "openai", nil
	case <-time.After(120 * time.Second):
		return nil, "timeout", fmt.Errorf("wizard generation timed out")
	}
}
