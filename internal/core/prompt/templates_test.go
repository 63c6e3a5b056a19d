package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sessionlab/therapynotes/internal/config"
)

func TestDefaultSetNames(t *testing.T) {
	set := DefaultSet()

	assert.Equal(t, GeneralTherapyExtraction, set.General.Name)
	assert.Equal(t, RelationalDynamics, set.Relational.Name)
	assert.Equal(t, TherapeuticProgress, set.Progress.Name)
}

func TestRenderSubstitutesConversation(t *testing.T) {
	set := DefaultSet()
	conversation := "SPEAKER_00: a line of dialogue"

	for _, tmpl := range []Template{set.General, set.Relational, set.Progress} {
		rendered := tmpl.Render(conversation)
		assert.Contains(t, rendered, conversation, tmpl.Name)
		assert.NotContains(t, rendered, "%s", tmpl.Name)
		// Each template declares its expected JSON shape inline.
		assert.Contains(t, rendered, "valid JSON object", tmpl.Name)
	}
}

func TestTemplatesDeclareDistinctSchemas(t *testing.T) {
	set := DefaultSet()

	assert.Contains(t, set.General.Instruction, `"session_summary"`)
	assert.Contains(t, set.Relational.Instruction, `"power_dynamics"`)
	assert.Contains(t, set.Progress.Instruction, `"key_insights"`)
	assert.False(t, strings.Contains(set.General.Instruction, `"key_insights"`))
}

func TestWithOverrides(t *testing.T) {
	set := DefaultSet().WithOverrides(config.Prompts{
		General: "override %s",
	})

	assert.Equal(t, "override %s", set.General.Instruction)
	assert.Equal(t, GeneralTherapyExtraction, set.General.Name, "overriding text keeps the template identity")
	assert.Equal(t, DefaultSet().Relational.Instruction, set.Relational.Instruction)
}
