package chooser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/prompts"
)

// actionIndexPattern pulls the chosen index out of the model reply. The
// model is told to answer {"action": <int>} but sometimes wraps it in
// fences or uses single quotes, so match loosely.
var actionIndexPattern = regexp.MustCompile(`action['"]?\s*:\s*(\d+)`)

// LLM asks the chat model to pick an action in character. Choose returns
// an error on transport failures or unusable replies; callers typically
// fall back to the Heuristic.
type LLM struct {
	Model string
}

func NewLLM(model string) *LLM {
	if strings.TrimSpace(model) == "" {
		model = constants.OpenAIChatModel
	}
	return &LLM{Model: model}
}

func (l *LLM) Choose(self, enemy *engine.PlayerState, actions, enemyActions []game.Action, goingFirst bool) (int, error) {
	if len(actions) == 0 {
		return 0, fmt.Errorf("no actions to choose from")
	}

	system := prompts.CombatSystemPrompt(self.Wizard, goingFirst)
	user := prompts.CombatUserPrompt(self, enemy, actions, enemyActions)

	reply, err := l.callOpenAI(system, user)
	if err != nil {
		return 0, err
	}

	m := actionIndexPattern.FindStringSubmatch(reply)
	if m == nil {
		return 0, fmt.Errorf("no action index in model reply: %q", reply)
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil || idx < 0 || idx >= len(actions) {
		return 0, fmt.Errorf("action index %s out of range", m[1])
	}
	logging.Debug("llm chooser picked action", logging.Fields{constants.LogFieldName: self.Wizard.Name, "index": idx})
	return idx, nil
}

func (l *LLM) callOpenAI(system, user string) (string, error) {
	apiKey := os.Getenv(constants.EnvOpenAIAPIKey)
	if apiKey == "" {
		return "", fmt.Errorf("%s not set", constants.EnvOpenAIAPIKey)
	}

	payload := map[string]interface{}{
		"model": l.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"max_completion_tokens": 200,
		"service_tier":          "default",
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", constants.OpenAIBaseURL+constants.OpenAIChatCompletionsPath, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	client := &http.Client{Timeout: 30 * time.Second}
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
