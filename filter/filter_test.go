package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/golfboard/scoring"
)

func testStandings() []scoring.Standing {
	return []scoring.Standing{
		{Rank: 1, PlayerID: "11", Name: "Alice Moore", Average: 71.8, Rounds: 6, Best: []int{68, 70, 72, 74, 75}},
		{Rank: 2, PlayerID: "12", Name: "Bob Smith", Average: 76.0, Rounds: 5, Best: []int{74, 75, 76, 77, 78}},
		{Rank: 3, PlayerID: "13", Name: "Carol Moore", Average: 82.4, Rounds: 9, Best: []int{80, 81, 82, 84, 85}},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Average < 75`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `containsFold(Name, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `Handicap < 10`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Average + 1`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `Rounds >= 6 and bestScore() < 70 and endsWithFold(Name, "moore")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileFilter(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestFilterEvaluate(t *testing.T) {
	standings := testStandings()

	tests := []struct {
		name       string
		expression string
		expected   []string
	}{
		{"average", `Average < 80`, []string{"Alice Moore", "Bob Smith"}},
		{"rounds", `Rounds > 5`, []string{"Alice Moore", "Carol Moore"}},
		{"rank", `Rank <= 2`, []string{"Alice Moore", "Bob Smith"}},
		{"player id", `PlayerID in ["12", "13"]`, []string{"Bob Smith", "Carol Moore"}},
		{"containsFold is case insensitive", `containsFold(Name, "MOORE")`, []string{"Alice Moore", "Carol Moore"}},
		{"startsWithFold", `startsWithFold(Name, "bob")`, []string{"Bob Smith"}},
		{"endsWithFold", `endsWithFold(Name, "SMITH")`, []string{"Bob Smith"}},
		{"contains operator", `lower(Name) contains "moore"`, []string{"Alice Moore", "Carol Moore"}},
		{"startsWith operator", `Name startsWith "Carol"`, []string{"Carol Moore"}},
		{"lower", `lower(Name) == "carol moore"`, []string{"Carol Moore"}},
		{"upper", `upper(Name) == "BOB SMITH"`, []string{"Bob Smith"}},
		{"best score", `bestScore() < 70`, []string{"Alice Moore"}},
		{"worst score", `worstScore() >= 85`, []string{"Carol Moore"}},
		{"best list", `any(Best, {# == 76})`, []string{"Bob Smith"}},
		{"standing struct", `Standing.Rounds == 9`, []string{"Carol Moore"}},
		{"nothing", `Average < 50`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileFilter(tt.expression)
			require.NoError(t, err)

			matched, err := Apply(f, standings)
			require.NoError(t, err)

			names := make([]string, 0, len(matched))
			for _, s := range matched {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestApply_KeepsRanks(t *testing.T) {
	f, err := CompileFilter(`Name == "Carol Moore"`)
	require.NoError(t, err)

	matched, err := Apply(f, testStandings())
	require.NoError(t, err)

	require.Len(t, matched, 1)
	assert.Equal(t, 3, matched[0].Rank)
}

func TestApply_NilFilter(t *testing.T) {
	standings := testStandings()

	matched, err := Apply(nil, standings)
	require.NoError(t, err)
	assert.Equal(t, standings, matched)
}

func TestApply_EvaluationError(t *testing.T) {
	f, err := CompileFilter(`Best[7] > 70`)
	require.NoError(t, err)

	_, err = Apply(f, testStandings())
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "Alice Moore", evalErr.Player)
}

func TestCompileFilter_OperatorNamesAreNotFunctions(t *testing.T) {
	for _, expression := range []string{
		`contains(Name, "moore")`,
		`startsWith(Name, "al")`,
		`endsWith(Name, "moore")`,
	} {
		_, err := CompileFilter(expression)
		var compErr *CompilationError
		assert.ErrorAs(t, err, &compErr, expression)
	}
}

func TestCompileFilter_WithOptions(t *testing.T) {
	f, err := CompileFilter(`Rounds > minRounds()`, WithCustomFunctions(map[string]any{
		"minRounds": func() int { return 5 },
	}))
	require.NoError(t, err)

	matched, err := Apply(f, testStandings())
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Alice Moore", matched[0].Name)
	assert.Equal(t, "Carol Moore", matched[1].Name)

	// the default compiler does not know the helper
	_, err = CompileFilter(`Rounds > minRounds()`)
	assert.Error(t, err)
}

func TestWithCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"par": func() int { return 72 },
	}))

	f, err := compiler.Compile(`bestScore() < par()`)
	require.NoError(t, err)

	matched, err := Apply(f, testStandings())
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Alice Moore", matched[0].Name)
}
