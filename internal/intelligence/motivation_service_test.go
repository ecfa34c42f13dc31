package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns a canned response or error and records the last request.
type fakeLLM struct {
	text    string
	err     error
	lastReq llm.GenerateRequest
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeLLM) Available(context.Context) bool { return f.err == nil }

func TestMotivationalTip_UsesModelResponse(t *testing.T) {
	fake := &fakeLLM{text: "\n  \"Finish the report before checking anything else.\"  \n"}
	svc := NewMotivationService(fake)

	tip := svc.MotivationalTip(context.Background(), domain.CategoryFocus, 25, "Finish report")

	assert.Equal(t, "Finish the report before checking anything else.", tip,
		"response is trimmed to one clean line")
	assert.Equal(t, llm.TaskMotivation, fake.lastReq.Task)
	assert.Contains(t, fake.lastReq.UserPrompt, "Finish report")
	assert.Contains(t, fake.lastReq.UserPrompt, "25 minutes")
}

func TestMotivationalTip_FallsBackOnError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("connection refused")}
	svc := NewMotivationService(fake)

	tip := svc.MotivationalTip(context.Background(), domain.CategoryLearning, 50, "Read chapter 4")

	assert.Equal(t, DefaultTip(domain.CategoryLearning), tip)
}

func TestMotivationalTip_FallsBackOnBlankResponse(t *testing.T) {
	fake := &fakeLLM{text: "   \n\t\n"}
	svc := NewMotivationService(fake)

	tip := svc.MotivationalTip(context.Background(), domain.CategoryChore, 15, "Inbox zero")

	assert.Equal(t, DefaultTip(domain.CategoryChore), tip)
}

func TestCelebrationMessage_UsesModelResponse(t *testing.T) {
	fake := &fakeLLM{text: "That sketch exists now. Well done."}
	svc := NewMotivationService(fake)

	msg := svc.CelebrationMessage(context.Background(), domain.CategoryCreative)

	assert.Equal(t, "That sketch exists now. Well done.", msg)
	assert.Equal(t, llm.TaskCelebration, fake.lastReq.Task)
	assert.Contains(t, fake.lastReq.UserPrompt, string(domain.CategoryCreative))
}

func TestCelebrationMessage_FallsBackOnError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("timeout")}
	svc := NewMotivationService(fake)

	msg := svc.CelebrationMessage(context.Background(), domain.CategoryRest)

	assert.Equal(t, DefaultCelebration(domain.CategoryRest), msg)
}

func TestStaticService_ServesFallbacks(t *testing.T) {
	svc := NewStaticMotivationService()
	ctx := context.Background()

	for _, c := range domain.AllCategories {
		assert.Equal(t, DefaultTip(c), svc.MotivationalTip(ctx, c, 25, "x"))
		assert.Equal(t, DefaultCelebration(c), svc.CelebrationMessage(ctx, c))
	}
}

func TestFallbacks_CoverEveryCategory(t *testing.T) {
	for _, c := range domain.AllCategories {
		require.NotEmpty(t, DefaultTip(c), "tip for %s", c)
		require.NotEmpty(t, DefaultCelebration(c), "celebration for %s", c)
	}

	// Unknown categories still get something printable.
	assert.NotEmpty(t, DefaultTip(domain.Category("other")))
	assert.NotEmpty(t, DefaultCelebration(domain.Category("other")))
}

func TestSanitizeLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`"quoted"`, "quoted"},
		{"  padded  ", "padded"},
		{"first\nsecond", "first"},
		{"\n\nlate start", "late start"},
		{strings.Repeat(" ", 5), ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeLine(tc.in), "input %q", tc.in)
	}
}
