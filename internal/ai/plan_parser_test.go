package ai

import (
	"testing"

	"keystone-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.ProjectPlan
		wantErr bool
	}{
		{
			name:  "plain JSON",
			input: `{"suggestions":["Open layout"],"materials":["Quartz"],"considerations":["Permit"],"estimatedCost":"$30,000 - $45,000"}`,
			want: models.ProjectPlan{
				Suggestions:    []string{"Open layout"},
				Materials:      []string{"Quartz"},
				Considerations: []string{"Permit"},
				EstimatedCost:  "$30,000 - $45,000",
			},
		},
		{
			name:  "code fence with prose and snake_case cost",
			input: "Here is your plan:\n```json\n{\"suggestions\":[\" Egress window \",\"\"],\"materials\":[],\"considerations\":[\"Moisture {test}\"],\"estimated_cost\":\"$20k\"}\n```\nGood luck!",
			want: models.ProjectPlan{
				Suggestions:    []string{"Egress window"},
				Materials:      []string{},
				Considerations: []string{"Moisture {test}"},
				EstimatedCost:  "$20k",
			},
		},
		{
			name:  "trailing text after object",
			input: `{"suggestions":["A \"quoted\" idea"],"estimatedCost":"TBD"} extra }`,
			want: models.ProjectPlan{
				Suggestions:    []string{"A \"quoted\" idea"},
				Materials:      []string{},
				Considerations: []string{},
				EstimatedCost:  "TBD",
			},
		},
		{name: "no JSON", input: "I cannot help with that.", wantErr: true},
		{name: "unbalanced", input: `{"suggestions":["x"]`, wantErr: true},
		{name: "wrong types", input: `{"suggestions":"x","estimatedCost":"1"}`, wantErr: true},
		{name: "no suggestions", input: `{"suggestions":["  "],"estimatedCost":"$1"}`, wantErr: true},
		{name: "no cost", input: `{"suggestions":["x"],"estimatedCost":"  "}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlan(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrPlanGenerationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildUserMessage(t *testing.T) {
	assert.Equal(t, "Project description:\nRedo my deck", buildUserMessage(" Redo my deck ", ""))
	assert.Equal(t, "Project type: deck\n\nProject description:\nRedo my deck", buildUserMessage("Redo my deck", "deck"))
}

func TestLoadSystemPrompt(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		prompt, err := LoadSystemPrompt("")
		require.NoError(t, err)
		assert.Contains(t, prompt, "estimatedCost")
	})

	t.Run("override file", func(t *testing.T) {
		path := t.TempDir() + "/prompt.md"
		require.NoError(t, writeFile(path, "  custom prompt\n"))
		prompt, err := LoadSystemPrompt(path)
		require.NoError(t, err)
		assert.Equal(t, "custom prompt", prompt)
	})

	t.Run("empty file", func(t *testing.T) {
		path := t.TempDir() + "/prompt.md"
		require.NoError(t, writeFile(path, "\n"))
		_, err := LoadSystemPrompt(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSystemPrompt(t.TempDir() + "/nope.md")
		assert.Error(t, err)
	})
}
