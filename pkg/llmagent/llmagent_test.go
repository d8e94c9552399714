package llmagent_test

import (
	"context"
	"strings"
	"testing"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/llmagent"
	"github.com/brianbob12/chess-with-llm/pkg/oracle"
	"github.com/brianbob12/chess-with-llm/pkg/oracle/oracletest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateUsesLogprobsWhenPresent(t *testing.T) {
	stub := oracletest.New(func(messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error) {
		if opt.Logprobs {
			return []oracle.Choice{{
				Message: oracle.Message{Role: oracle.Assistant, Content: "white"},
				Logprobs: []oracle.TokenLogprob{
					{
						Token:   "white",
						Logprob: 0,
						TopLogprobs: []oracle.TokenLogprob{
							{Token: "white", Logprob: 0},
							{Token: "black", Logprob: -10},
						},
					},
				},
			}}, nil
		}
		return []oracle.Choice{{Message: oracle.Message{Role: oracle.Assistant, Content: "a description"}}}, nil
	})

	agent := llmagent.NewAgent(stub, llmagent.DefaultConfig(oracle.GPT35), nil)
	v, err := agent.Evaluate(context.Background(), chess.Initial())
	require.NoError(t, err)
	assert.Greater(t, v, 0.9, "a near-certain white prediction should score close to +1")
}

func TestEvaluateFallsBackToTextWithoutLogprobs(t *testing.T) {
	stub := oracletest.New(func(messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error) {
		if opt.Logprobs {
			return []oracle.Choice{{Message: oracle.Message{Role: oracle.Assistant, Content: "black"}}}, nil
		}
		return []oracle.Choice{{Message: oracle.Message{Role: oracle.Assistant, Content: "a description"}}}, nil
	})

	agent := llmagent.NewAgent(stub, llmagent.DefaultConfig(oracle.GPT35), nil)
	v, err := agent.Evaluate(context.Background(), chess.Initial())
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
}

func TestSuccessorsParsesMoveList(t *testing.T) {
	state := chess.Initial()
	legal := chess.LegalMoves(state, state.ToMove)
	require.NotEmpty(t, legal)

	stub := oracletest.New(func(messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error) {
		last := messages[len(messages)-1].Content
		if strings.Contains(last, "What moves") {
			return []oracle.Choice{{Message: oracle.Message{
				Content: "Moves: " + legal[0].Algebraic + ", " + legal[1].Algebraic,
			}}}, nil
		}
		return []oracle.Choice{{Message: oracle.Message{Content: "a description"}}}, nil
	})

	agent := llmagent.NewAgent(stub, llmagent.DefaultConfig(oracle.GPT35), nil)
	succs, err := agent.Successors(context.Background(), state)
	require.NoError(t, err)
	require.Len(t, succs, 2)
	for _, s := range succs {
		assert.Equal(t, 0.5, s.Probability)
	}
}

func TestSuccessorsRetriesOnEmptyParse(t *testing.T) {
	state := chess.Initial()
	calls := 0
	stub := oracletest.New(func(messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error) {
		last := messages[len(messages)-1].Content
		if strings.Contains(last, "What moves") {
			calls++
			if calls == 1 {
				return []oracle.Choice{{Message: oracle.Message{Content: "Moves: nonsense"}}}, nil
			}
			legal := chess.LegalMoves(state, state.ToMove)
			return []oracle.Choice{{Message: oracle.Message{Content: "Moves: " + legal[0].Algebraic}}}, nil
		}
		return []oracle.Choice{{Message: oracle.Message{Content: "a description"}}}, nil
	})

	agent := llmagent.NewAgent(stub, llmagent.DefaultConfig(oracle.GPT35), nil)
	succs, err := agent.Successors(context.Background(), state)
	require.NoError(t, err)
	require.Len(t, succs, 1)
	assert.Equal(t, 2, calls)
}

func TestDescribeIsCachedPerState(t *testing.T) {
	totalCalls := 0
	descCalls := 0
	stub := oracletest.New(func(messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error) {
		totalCalls++
		last := messages[len(messages)-1].Content
		if strings.Contains(last, "Who is more likely to win") {
			return []oracle.Choice{{Message: oracle.Message{Content: "white"}}}, nil
		}
		descCalls++
		return []oracle.Choice{{Message: oracle.Message{Content: "a description"}}}, nil
	})

	agent := llmagent.NewAgent(stub, llmagent.DefaultConfig(oracle.GPT35), nil)
	state := chess.Initial()

	_, err := agent.Evaluate(context.Background(), state)
	require.NoError(t, err)
	_, err = agent.Evaluate(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, 1, descCalls, "the description must be computed once and reused across both evaluate calls")
	assert.Equal(t, 3, totalCalls, "one describe call plus two evaluate calls")
}
