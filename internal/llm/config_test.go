package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 8000, cfg.Tasks[TaskMotivation].TimeoutMs)
	assert.Equal(t, 6000, cfg.Tasks[TaskCelebration].TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TEMPO_LLM_ENABLED", "true")
	t.Setenv("TEMPO_LLM_MODEL", "qwen2.5")
	t.Setenv("TEMPO_LLM_TIMEOUT_MS", "9000")
	t.Setenv("TEMPO_LLM_MOTIVATION_TIMEOUT_MS", "15000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskMotivation))
	assert.Equal(t, 6000, cfg.TaskTimeout(TaskCelebration))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("TEMPO_LLM_CELEBRATION_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 6000, cfg.TaskTimeout(TaskCelebration))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	cfg.Tasks = map[TaskType]TaskConfig{}

	assert.Equal(t, 1234, cfg.TaskTimeout(TaskMotivation))
}
