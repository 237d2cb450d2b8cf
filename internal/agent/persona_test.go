package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotNameFromMetadata(t *testing.T) {
	cases := []struct {
		name     string
		metadata string
		want     string
	}{
		{"bot name present", `{"selectedPerson":"bob","botName":"bob"}`, "bob"},
		{"missing bot name", `{"selectedPerson":"bob"}`, DefaultBotName},
		{"empty bot name kept", `{"botName":""}`, ""},
		{"blank bot name kept", `{"botName":"  "}`, "  "},
		{"non string bot name", `{"botName":42}`, "42"},
		{"null bot name", `{"botName":null}`, DefaultBotName},
		{"metadata is not an object", `["bob"]`, DefaultBotName},
		{"invalid json", `{oops`, DefaultBotName},
		{"empty", ``, DefaultBotName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BotNameFromMetadata(tc.metadata))
		})
	}
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hey, I'm Shyam. How can I help you today?", Greeting("Shyam"))
}

func TestSystemPromptEmbedsBotName(t *testing.T) {
	prompt := SystemPrompt("Ketan")
	assert.Contains(t, prompt, "<prompt>\nKetan\n")
	assert.Contains(t, prompt, "no more than 30 words")
}

func TestTemplatesCoverThreePersonas(t *testing.T) {
	assert.Len(t, Templates, 3)
	for _, key := range []string{PersonaCodeReviewer, PersonaDesignReviewer, PersonaPresentationReviewer} {
		assert.NotEmpty(t, Templates[key], key)
	}
}
