package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	calls int
}

func (g *stubGenerator) Generate(tier int) string {
	g.calls++
	return fmt.Sprintf("question for tier %d", tier)
}

type stubEvaluator struct {
	score int
}

func (e *stubEvaluator) EvaluateAll(records []*Record) {
	for _, rec := range records {
		if rec.Skipped {
			rec.Score = 0
			rec.Explanation = "Question was skipped"
			rec.Evaluated = true
			continue
		}
		if rec.Evaluated {
			continue
		}
		rec.Score = e.score
		rec.Explanation = "stub"
		rec.Evaluated = true
	}
}

func TestStartTransition(t *testing.T) {
	s := New()
	require.Equal(t, PhaseNotStarted, s.Phase)

	s.Start()
	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.Equal(t, 0, s.CurrentIndex)

	// Replaying Start changes nothing.
	s.CurrentIndex = 2
	s.Start()
	assert.Equal(t, 2, s.CurrentIndex)
}

func TestEnsureQuestionIsLazy(t *testing.T) {
	gen := &stubGenerator{}
	s := New()

	// No question before the interview starts.
	s.EnsureQuestion(gen)
	assert.Empty(t, s.Records)

	s.Start()
	s.EnsureQuestion(gen)
	require.Len(t, s.Records, 1)
	assert.Equal(t, "question for tier 1", s.Records[0].Question)
	assert.Equal(t, 1, s.Records[0].DifficultyLevel)

	// Already generated for the current index, no second call.
	s.EnsureQuestion(gen)
	assert.Equal(t, 1, gen.calls)
}

func TestSaveAnswerKeepsIndex(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)

	s.SaveAnswer("draft answer")
	assert.Equal(t, "draft answer", s.Records[0].Answer)
	assert.Equal(t, 0, s.CurrentIndex)
}

func TestNextRejectsEmptyAnswer(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)
	s.Records[0].Answer = "kept"

	for _, text := range []string{"", "   ", "\n\t"} {
		err := s.Next(text)
		require.ErrorIs(t, err, ErrEmptyAnswer)
		assert.Equal(t, 0, s.CurrentIndex)
		assert.Equal(t, "kept", s.Records[0].Answer)
	}
}

func TestNextAdvances(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)

	require.NoError(t, s.Next("a real answer"))
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Equal(t, "a real answer", s.Records[0].Answer)
	assert.Equal(t, PhaseInProgress, s.Phase)
}

func TestNextClearsSkipOnSameIndex(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)

	s.SkippedIndices[0] = true
	s.Records[0].Skipped = true

	require.NoError(t, s.Next("answered after all"))
	assert.False(t, s.Records[0].Skipped)
	assert.NotContains(t, s.SkippedIndices, 0)
}

func TestSkipSavesPartialAnswer(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)

	s.Skip("half-typed thought")
	assert.Equal(t, "half-typed thought", s.Records[0].Answer)

	s.EnsureQuestion(gen)
	s.Skip("   ")
	assert.Equal(t, "", s.Records[1].Answer)
}

func TestSkipOnLastQuestionAwaitsSubmit(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	for i := 0; i < TotalQuestions-1; i++ {
		s.EnsureQuestion(gen)
		require.NoError(t, s.Next(fmt.Sprintf("answer %d", i)))
	}
	s.EnsureQuestion(gen)
	require.Equal(t, TotalQuestions-1, s.CurrentIndex)

	s.Skip("")
	assert.Equal(t, PhaseAwaitingSubmit, s.Phase)
	assert.Equal(t, TotalQuestions-1, s.CurrentIndex)
}

func TestNextOnLastQuestionAwaitsSubmit(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	for i := 0; i < TotalQuestions; i++ {
		s.EnsureQuestion(gen)
		require.NoError(t, s.Next(fmt.Sprintf("answer %d", i)))
	}

	assert.Equal(t, PhaseAwaitingSubmit, s.Phase)
	assert.Equal(t, TotalQuestions-1, s.CurrentIndex)
	assert.Len(t, s.Records, TotalQuestions)
}

func TestMarkForReviewIsInformational(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)

	s.MarkForReview(0, true)
	assert.True(t, s.Records[0].MarkedForReview)
	s.MarkForReview(0, false)
	assert.False(t, s.Records[0].MarkedForReview)

	// Out-of-range indices are ignored.
	s.MarkForReview(4, true)
	s.MarkForReview(-1, true)
}

func TestEvaluationPassCompletes(t *testing.T) {
	gen := &stubGenerator{}
	ev := &stubEvaluator{score: 2}
	s := completedFlow(t, gen)

	s.SubmitAll()
	require.Equal(t, PhaseEvaluating, s.Phase)

	s.RunEvaluation(ev)
	assert.Equal(t, PhaseComplete, s.Phase)
	for _, rec := range s.Records {
		assert.True(t, rec.Evaluated)
	}
	assert.Equal(t, 2*TotalQuestions, s.TotalScore())
	assert.Equal(t, 100.0, s.Percentage())
}

func TestRunEvaluationOnlyWhenEvaluating(t *testing.T) {
	ev := &stubEvaluator{score: 2}
	s := New()
	s.RunEvaluation(ev)
	assert.Equal(t, PhaseNotStarted, s.Phase)
}

func TestRestartYieldsFreshSession(t *testing.T) {
	gen := &stubGenerator{}
	ev := &stubEvaluator{score: 1}
	s := completedFlow(t, gen)
	s.SubmitAll()
	s.RunEvaluation(ev)
	s.Report = "some report"
	require.Equal(t, PhaseComplete, s.Phase)

	s.Restart()
	assert.Equal(t, New(), s)
}

func TestRestartOnlyFromComplete(t *testing.T) {
	gen := &stubGenerator{}
	s := New()
	s.Start()
	s.EnsureQuestion(gen)

	s.Restart()
	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.Len(t, s.Records, 1)
}

// completedFlow answers every question and leaves the session awaiting submit
func completedFlow(t *testing.T, gen *stubGenerator) *Session {
	t.Helper()
	s := New()
	s.Start()
	for i := 0; i < TotalQuestions; i++ {
		s.EnsureQuestion(gen)
		require.NoError(t, s.Next(fmt.Sprintf("answer %d", i)))
	}
	require.Equal(t, PhaseAwaitingSubmit, s.Phase)
	return s
}
