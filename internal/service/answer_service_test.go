package service

import (
	"errors"
	"testing"

	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerFixture struct {
	svc        AnswerService
	answers    *fakeAnswerRepo
	llmHistory *fakeLlmHistoryRepo
}

func newAnswerFixture() *answerFixture {
	titleID := uint(3)
	groupID := fixtureGroupID
	answers := newFakeAnswerRepo()
	questions := newFakeQuestionRepo(
		model.Question{ID: 1, TitleID: &titleID, GroupID: &groupID, QuestionText: "Describe your product", QuestionType: model.QuestionTypeText, Status: model.StatusActive},
		model.Question{ID: 2, TitleID: &titleID, QuestionText: "Company size", QuestionType: model.QuestionTypeRadio, Status: model.StatusActive},
		model.Question{ID: 3, TitleID: &titleID, QuestionText: "Markets", QuestionType: model.QuestionTypeCheckbox, Status: model.StatusActive},
	)
	options := newFakeOptionRepo(
		model.Option{ID: 10, QuestionID: 2, OptionText: "1-10", Status: model.StatusActive},
		model.Option{ID: 11, QuestionID: 2, OptionText: "11-50", Status: model.StatusActive},
		model.Option{ID: 20, QuestionID: 3, OptionText: "EU", Status: model.StatusActive},
		model.Option{ID: 21, QuestionID: 3, OptionText: "US", Status: model.StatusActive},
	)
	projects := newFakeProjectRepo(
		model.Project{ID: fixtureProjectID, UserID: fixtureUserID, Name: "Acme launch", Type: 1, Status: model.StatusActive},
	)
	titles := newFakeTitleRepo(
		model.Title{ID: titleID, Name: "Company profile", Status: model.StatusActive},
	)
	llmHistory := newFakeLlmHistoryRepo()
	return &answerFixture{
		svc:        NewAnswerService(answers, questions, options, projects, titles, llmHistory),
		answers:    answers,
		llmHistory: llmHistory,
	}
}

func TestSubmitIsAnUpsert(t *testing.T) {
	f := newAnswerFixture()

	first, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
		QuestionID: 1,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("version one"),
	})
	require.NoError(t, err)

	second, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
		QuestionID: 1,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("version two"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.Answer.ID, second.Answer.ID, "resubmitting must overwrite, not duplicate")
	assert.True(t, first.Created)
	assert.False(t, second.Created)
	require.NotNil(t, second.Answer.AnswerText)
	assert.Equal(t, "version two", *second.Answer.AnswerText)

	stored, err := f.answers.FindActiveByUserAndQuestions(fixtureUserID, []uint{1})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitEnforcesPayloadExclusivity(t *testing.T) {
	f := newAnswerFixture()

	t.Run("both text and options", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID:        2,
			ProjectID:         fixtureProjectID,
			AnswerText:        strptr("also text"),
			SelectedOptionIDs: []int64{10},
		})
		assert.ErrorIs(t, err, ErrInvalidAnswerPayload)
	})

	t.Run("neither text nor options", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID: 1,
			ProjectID:  fixtureProjectID,
		})
		assert.ErrorIs(t, err, ErrInvalidAnswerPayload)
	})

	t.Run("options on a text question", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID:        1,
			ProjectID:         fixtureProjectID,
			SelectedOptionIDs: []int64{10},
		})
		assert.ErrorIs(t, err, ErrInvalidAnswerPayload)
	})

	t.Run("text on a radio question", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID: 2,
			ProjectID:  fixtureProjectID,
			AnswerText: strptr("free text"),
		})
		assert.ErrorIs(t, err, ErrInvalidAnswerPayload)
	})
}

func TestSubmitValidatesOptionChoices(t *testing.T) {
	f := newAnswerFixture()

	t.Run("radio takes exactly one option", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID:        2,
			ProjectID:         fixtureProjectID,
			SelectedOptionIDs: []int64{10, 11},
		})
		assert.ErrorIs(t, err, ErrInvalidAnswerPayload)
	})

	t.Run("options must belong to the question", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID:        2,
			ProjectID:         fixtureProjectID,
			SelectedOptionIDs: []int64{20},
		})
		assert.ErrorIs(t, err, ErrInvalidOptionIDs)
	})

	t.Run("duplicate option ids rejected", func(t *testing.T) {
		_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID:        3,
			ProjectID:         fixtureProjectID,
			SelectedOptionIDs: []int64{20, 20},
		})
		assert.ErrorIs(t, err, ErrInvalidOptionIDs)
	})

	t.Run("checkbox takes several options", func(t *testing.T) {
		resp, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
			QuestionID:        3,
			ProjectID:         fixtureProjectID,
			SelectedOptionIDs: []int64{20, 21},
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{20, 21}, resp.Answer.SelectedOptionIDs)
	})
}

func TestSubmitSurfacesLookupFailures(t *testing.T) {
	f := newAnswerFixture()
	f.answers.findActiveErr = errors.New("connection reset")

	_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
		QuestionID: 1,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("text"),
	})
	require.Error(t, err)

	// A failed lookup must never fall through to an insert, or a retry would
	// leave two active rows for the same question.
	stored, findErr := f.answers.FindActiveByUserAndQuestions(fixtureUserID, []uint{1})
	require.NoError(t, findErr)
	assert.Empty(t, stored)
}

func TestSubmitRequiresOwnedProject(t *testing.T) {
	f := newAnswerFixture()
	_, err := f.svc.Submit(uint(42), dto.SubmitAnswerRequest{
		QuestionID: 1,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("text"),
	})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestUpdateRejectsForeignAnswers(t *testing.T) {
	f := newAnswerFixture()
	submitted, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
		QuestionID: 1,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("mine"),
	})
	require.NoError(t, err)

	_, err = f.svc.Update(uint(42), dto.UpdateAnswerRequest{
		AnswerID:   submitted.Answer.ID,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("stolen"),
	})
	assert.ErrorIs(t, err, ErrForbidden)

	current, err := f.answers.FindByID(submitted.Answer.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", *current.AnswerText)
}

func TestLlmHistorySaveAndListPerQuestion(t *testing.T) {
	f := newAnswerFixture()

	saved, err := f.svc.SaveLlmHistory(fixtureUserID, dto.SaveLlmHistoryRequest{
		QuestionID:      1,
		ProjectID:       fixtureProjectID,
		LlmAnswer:       "generated pitch",
		RejectionReason: "too generic",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated pitch", saved.History.LlmAnswer)

	_, err = f.svc.SaveLlmHistory(fixtureUserID, dto.SaveLlmHistoryRequest{
		QuestionID:      2,
		ProjectID:       fixtureProjectID,
		LlmAnswer:       "other question",
		RejectionReason: "off topic",
	})
	require.NoError(t, err)

	list, err := f.svc.ListLlmHistory(fixtureUserID, fixtureProjectID, 1)
	require.NoError(t, err)
	require.Len(t, list.History, 1)
	assert.Equal(t, "too generic", list.History[0].RejectionReason)

	t.Run("unknown question rejected", func(t *testing.T) {
		_, err := f.svc.SaveLlmHistory(fixtureUserID, dto.SaveLlmHistoryRequest{
			QuestionID:      99,
			ProjectID:       fixtureProjectID,
			LlmAnswer:       "x",
			RejectionReason: "y",
		})
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("foreign project rejected", func(t *testing.T) {
		_, err := f.svc.ListLlmHistory(uint(42), fixtureProjectID, 1)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestListByTitlePairsQuestionsWithAnswers(t *testing.T) {
	f := newAnswerFixture()
	_, err := f.svc.Submit(fixtureUserID, dto.SubmitAnswerRequest{
		QuestionID: 1,
		ProjectID:  fixtureProjectID,
		AnswerText: strptr("answered"),
	})
	require.NoError(t, err)

	resp, err := f.svc.ListByTitle(fixtureUserID, 3)
	require.NoError(t, err)
	require.Len(t, resp.Answers, 3)

	answered := 0
	for _, view := range resp.Answers {
		if view.Answer != nil {
			answered++
			assert.Equal(t, uint(1), view.Question.ID)
		}
	}
	assert.Equal(t, 1, answered)
}
