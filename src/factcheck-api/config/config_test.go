package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtcheck/courtcheck/src/verifier/data"
)

func TestSettingPrefersDatabaseOverEnv(t *testing.T) {
	data.SetSetting("ai_model", "gpt-5-mini")
	t.Cleanup(func() { data.SetSetting("ai_model", "") })
	t.Setenv("AI_MODEL", "gpt-4o")

	assert.Equal(t, "gpt-5-mini", setting("ai_model", "AI_MODEL", "gpt-5"))
}

func TestSettingFallsBackToEnvThenDefault(t *testing.T) {
	data.SetSetting("ai_model", "")
	t.Setenv("AI_MODEL", "gpt-4o")
	assert.Equal(t, "gpt-4o", setting("ai_model", "AI_MODEL", "gpt-5"))

	t.Setenv("AI_MODEL", "")
	assert.Equal(t, "gpt-5", setting("ai_model", "AI_MODEL", "gpt-5"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"nba.com", "espn.com"}, splitList(" nba.com , espn.com ,"))
	assert.Nil(t, splitList(""))
}
