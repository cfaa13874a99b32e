package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresnme/merdia/pkg/config"
	"github.com/emresnme/merdia/pkg/models"
)

const cleanSource = `graph TD
    Start[Start]
    Stop[Stop]
    Start-->Stop
`

func TestAnalyzeCleanDiagram(t *testing.T) {
	r := New()
	assert.Empty(t, r.Analyze(cleanSource))
}

func TestAnalyzeUndefinedChain(t *testing.T) {
	// Endpoints alone never become definitions, but single-character
	// identifiers fall under the typo length floor.
	r := New()
	assert.Empty(t, r.Analyze("graph TD\nA-->B\nB-->C"))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	r := New()
	assert.Nil(t, r.Analyze(""))
	assert.Nil(t, r.Analyze("   \n\t\n"))
}

func TestAnalyzePassOrder(t *testing.T) {
	r := New()
	src := "graph XY\nsubgraph S\n    Start[Start]\n    A-->Strat"

	issues := r.Analyze(src)
	require.Len(t, issues, 3)
	assert.Equal(t, models.KindUnknownDirection, issues[0].Kind)
	assert.Equal(t, models.KindMissingEnd, issues[1].Kind)
	assert.Equal(t, models.KindPossibleTypo, issues[2].Kind)
}

func TestAnalyzeIsPure(t *testing.T) {
	r := New()
	src := "graph XY\nsubgraph S\n    Start[Start]\n    A-->Strat"

	first := r.Analyze(src)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Analyze(src))
	}
}

func TestAnalyzeCombinedIssues(t *testing.T) {
	r := New()
	src := "graph TD\nsubgraph Flow\n    Start[Start]\n    A-->Strat\nend\nend"

	issues := r.Analyze(src)
	require.Len(t, issues, 2)
	assert.Equal(t, models.KindUnexpectedEnd, issues[0].Kind)
	assert.Equal(t, 6, issues[0].Line)
	assert.Equal(t, models.KindPossibleTypo, issues[1].Kind)
}

func TestWithoutOptions(t *testing.T) {
	src := "graph XY\nsubgraph S\n    Start[Start]\n    A-->Strat"

	tests := []struct {
		name      string
		opt       Option
		gone      models.IssueKind
		remaining int
	}{
		{"without direction", WithoutDirection(), models.KindUnknownDirection, 2},
		{"without subgraph", WithoutSubgraph(), models.KindMissingEnd, 2},
		{"without typo", WithoutTypo(), models.KindPossibleTypo, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := New(tt.opt).Analyze(src)
			require.Len(t, issues, tt.remaining)
			for _, issue := range issues {
				assert.NotEqual(t, tt.gone, issue.Kind)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.Direction = false
	cfg.Analysis.Subgraph = false

	src := "graph XY\nsubgraph S\n    Start[Start]\n    A-->Strat"
	issues := FromConfig(cfg).Analyze(src)
	require.Len(t, issues, 1)
	assert.Equal(t, models.KindPossibleTypo, issues[0].Kind)
}

func TestFromConfigNil(t *testing.T) {
	issues := FromConfig(nil).Analyze("graph XY")
	require.Len(t, issues, 1)
	assert.Equal(t, models.KindUnknownDirection, issues[0].Kind)
}

func TestFromConfigTypoThresholds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Typo.MaxDistance = 1

	src := "graph TD\n    Start[Start]\n    A-->Strat"
	assert.Empty(t, FromConfig(cfg).Analyze(src))
}

func TestAnalyzeLines(t *testing.T) {
	r := New()
	issues := r.AnalyzeLines([]string{"graph XY"})
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
}
