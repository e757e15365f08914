package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"leading chatter", `Sure! Here you go: {"a":1}`, `{"a":1}`},
		{"trailing chatter", `{"a":1} hope that helps`, `{"a":1}`},
		{"both sides", "Plan below.\n{\"a\":{\"b\":2}}\nDone.", `{"a":{"b":2}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractJSON(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractJSONErrors(t *testing.T) {
	for _, in := range []string{"", "no braces here", "only closes }", "{ never closes"} {
		_, err := extractJSON(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestBuildPrompt(t *testing.T) {
	d := dateFor(t, "2026-08-29")
	prompt := buildPrompt("Launch a mobile app in 3 weeks", d)
	assert.Contains(t, prompt, "Launch a mobile app in 3 weeks")
	assert.Contains(t, prompt, "2026-08-29")
	assert.Contains(t, prompt, "estimated_duration")
	assert.Contains(t, prompt, "tasks_completed")
}
