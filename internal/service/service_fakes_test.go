package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. They mimic the
// Postgres-backed implementations closely enough for business logic: soft
// deletes are status flips and "for update" reads are plain reads, since a
// single test goroutine needs no locking.

type fakeAnswerRepo struct {
	nextID  uint
	answers map[uint]model.Answer

	// findActiveErr, when set, is returned by FindActive to imitate a
	// database failure during the upsert lookup.
	findActiveErr error
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{nextID: 1, answers: make(map[uint]model.Answer)}
}

func (f *fakeAnswerRepo) WithTx(tx *gorm.DB) repository.AnswerRepository { return f }

func (f *fakeAnswerRepo) Create(a *model.Answer) error {
	a.ID = f.nextID
	f.nextID++
	f.answers[a.ID] = *a
	return nil
}

func (f *fakeAnswerRepo) Update(a *model.Answer) error {
	if _, ok := f.answers[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.answers[a.ID] = *a
	return nil
}

func (f *fakeAnswerRepo) FindByID(id uint) (*model.Answer, error) {
	a, ok := f.answers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := a
	return &out, nil
}

func (f *fakeAnswerRepo) FindActive(userID, projectID, questionID uint) (*model.Answer, error) {
	if f.findActiveErr != nil {
		return nil, f.findActiveErr
	}
	for _, a := range f.answers {
		if a.UserID == userID && a.ProjectID == projectID && a.QuestionID == questionID && a.Status == model.StatusActive {
			out := a
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAnswerRepo) FindActiveByUserAndQuestions(userID uint, questionIDs []uint) ([]model.Answer, error) {
	wanted := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var out []model.Answer
	for _, a := range f.answers {
		if a.UserID == userID && wanted[a.QuestionID] && a.Status == model.StatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) FindActiveByUserAndQuestionsForUpdate(userID uint, questionIDs []uint) ([]model.Answer, error) {
	return f.FindActiveByUserAndQuestions(userID, questionIDs)
}

func (f *fakeAnswerRepo) snapshot() map[uint]model.Answer {
	out := make(map[uint]model.Answer, len(f.answers))
	for k, v := range f.answers {
		out[k] = v
	}
	return out
}

type fakeHistoryRepo struct {
	nextID uint
	rows   []model.AnswerHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (f *fakeHistoryRepo) WithTx(tx *gorm.DB) repository.AnswerHistoryRepository { return f }

func (f *fakeHistoryRepo) Create(h *model.AnswerHistory) error {
	h.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *h)
	return nil
}

func (f *fakeHistoryRepo) LatestVersion(answerID uint, entityType int) (int, error) {
	latest := 0
	for _, h := range f.rows {
		if h.AnswerID == answerID && h.EntityType == entityType && h.Version > latest {
			latest = h.Version
		}
	}
	return latest, nil
}

func (f *fakeHistoryRepo) FindByAnswer(answerID uint) ([]model.AnswerHistory, error) {
	var out []model.AnswerHistory
	for _, h := range f.rows {
		if h.AnswerID == answerID {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeTransactor snapshots the answer and history stores before running the
// function and restores them when it fails, imitating a rollback.
type fakeTransactor struct {
	answers *fakeAnswerRepo
	history *fakeHistoryRepo
}

func (t *fakeTransactor) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	answersBefore := t.answers.snapshot()
	answersNextID := t.answers.nextID
	historyBefore := append([]model.AnswerHistory(nil), t.history.rows...)
	historyNextID := t.history.nextID

	if err := fc(nil); err != nil {
		t.answers.answers = answersBefore
		t.answers.nextID = answersNextID
		t.history.rows = historyBefore
		t.history.nextID = historyNextID
		return err
	}
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]model.Question
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	f := &fakeQuestionRepo{questions: make(map[uint]model.Question)}
	for _, q := range questions {
		f.questions[q.ID] = q
	}
	return f
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	f.questions[q.ID] = *q
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := q
	return &out, nil
}

func (f *fakeQuestionRepo) FindActiveByID(id uint) (*model.Question, error) {
	q, err := f.FindByID(id)
	if err != nil || q.Status != model.StatusActive {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindActiveByIDs(ids []uint, groupID *uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range ids {
		q, ok := f.questions[id]
		if !ok || q.Status != model.StatusActive {
			continue
		}
		if groupID != nil && (q.GroupID == nil || *q.GroupID != *groupID) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindByTitle(titleID uint, limit, offset int) ([]model.Question, int64, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.TitleID != nil && *q.TitleID == titleID && q.Status == model.StatusActive {
			out = append(out, q)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuestionRepo) FindAll(limit, offset int) ([]model.Question, int64, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.Status == model.StatusActive {
			out = append(out, q)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuestionRepo) Update(q *model.Question) error {
	f.questions[q.ID] = *q
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	delete(f.questions, id)
	return nil
}

type fakeOptionRepo struct {
	options map[uint]model.Option
}

func newFakeOptionRepo(options ...model.Option) *fakeOptionRepo {
	f := &fakeOptionRepo{options: make(map[uint]model.Option)}
	for _, o := range options {
		f.options[o.ID] = o
	}
	return f
}

func (f *fakeOptionRepo) Create(o *model.Option) error {
	if o.ID == 0 {
		o.ID = uint(len(f.options) + 1)
	}
	f.options[o.ID] = *o
	return nil
}

func (f *fakeOptionRepo) FindByID(id uint) (*model.Option, error) {
	o, ok := f.options[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := o
	return &out, nil
}

func (f *fakeOptionRepo) CountActiveByQuestion(questionID uint) (int64, error) {
	var count int64
	for _, o := range f.options {
		if o.QuestionID == questionID && o.Status == model.StatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeOptionRepo) CountActiveByQuestionAndIDs(questionID uint, ids []int64) (int64, error) {
	var count int64
	for _, id := range ids {
		o, ok := f.options[uint(id)]
		if ok && o.QuestionID == questionID && o.Status == model.StatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeOptionRepo) Update(o *model.Option) error {
	f.options[o.ID] = *o
	return nil
}

func (f *fakeOptionRepo) Delete(id uint) error {
	delete(f.options, id)
	return nil
}

func (f *fakeOptionRepo) DeleteByQuestion(questionID uint) error {
	for id, o := range f.options {
		if o.QuestionID == questionID {
			delete(f.options, id)
		}
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[uint]model.Project
}

func newFakeProjectRepo(projects ...model.Project) *fakeProjectRepo {
	f := &fakeProjectRepo{projects: make(map[uint]model.Project)}
	for _, p := range projects {
		f.projects[p.ID] = p
	}
	return f
}

func (f *fakeProjectRepo) Create(p *model.Project) error {
	if p.ID == 0 {
		p.ID = uint(len(f.projects) + 1)
	}
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeProjectRepo) FindActiveByID(id uint) (*model.Project, error) {
	p, ok := f.projects[id]
	if !ok || p.Status != model.StatusActive {
		return nil, gorm.ErrRecordNotFound
	}
	out := p
	return &out, nil
}

func (f *fakeProjectRepo) FindActiveByIDAndUser(id, userID uint) (*model.Project, error) {
	p, err := f.FindActiveByID(id)
	if err != nil || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) FindAllActiveByUser(userID uint, limit, offset int) ([]model.Project, int64, error) {
	var out []model.Project
	for _, p := range f.projects {
		if p.UserID == userID && p.Status == model.StatusActive {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeProjectRepo) Update(p *model.Project) error {
	f.projects[p.ID] = *p
	return nil
}

type fakeTitleRepo struct {
	titles map[uint]model.Title
}

func newFakeTitleRepo(titles ...model.Title) *fakeTitleRepo {
	f := &fakeTitleRepo{titles: make(map[uint]model.Title)}
	for _, t := range titles {
		f.titles[t.ID] = t
	}
	return f
}

func (f *fakeTitleRepo) Create(t *model.Title) error {
	if t.ID == 0 {
		t.ID = uint(len(f.titles) + 1)
	}
	f.titles[t.ID] = *t
	return nil
}

func (f *fakeTitleRepo) FindActiveByID(id uint) (*model.Title, error) {
	t, ok := f.titles[id]
	if !ok || t.Status != model.StatusActive {
		return nil, gorm.ErrRecordNotFound
	}
	out := t
	return &out, nil
}

func (f *fakeTitleRepo) FindAll() ([]model.Title, error) {
	var out []model.Title
	for _, t := range f.titles {
		if t.Status == model.StatusActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTitleRepo) Update(t *model.Title) error {
	f.titles[t.ID] = *t
	return nil
}

type fakeUserRepo struct {
	nextID uint
	users  map[uint]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]model.User)}
}

func (f *fakeUserRepo) Create(u *model.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := u
	return &out, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAllActive(limit, offset int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range f.users {
		if u.Status == model.StatusActive {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(u *model.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.users[u.ID] = *u
	return nil
}

type fakeRoleRepo struct {
	roles map[string]model.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[string]model.Role{
		model.RoleUser:  {ID: 1, Name: model.RoleUser},
		model.RoleAdmin: {ID: 2, Name: model.RoleAdmin},
	}}
}

func (f *fakeRoleRepo) FindByName(name string) (*model.Role, error) {
	r, ok := f.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := r
	return &out, nil
}

func (f *fakeRoleRepo) FindByID(id uint) (*model.Role, error) {
	for _, r := range f.roles {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTokenRepo struct {
	rows []model.Token
}

func (f *fakeTokenRepo) Create(t *model.Token) error {
	t.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *t)
	return nil
}

func (f *fakeTokenRepo) Find(userID uint, token, tokenType string) (*model.Token, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.Token == token && row.Type == tokenType {
			out := row
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTokenRepo) DeleteByUserAndType(userID uint, tokenType string) error {
	var kept []model.Token
	for _, row := range f.rows {
		if row.UserID == userID && row.Type == tokenType {
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return nil
}

type fakeLlmHistoryRepo struct {
	nextID uint
	rows   []model.LlmHistory
}

func newFakeLlmHistoryRepo() *fakeLlmHistoryRepo {
	return &fakeLlmHistoryRepo{nextID: 1}
}

func (f *fakeLlmHistoryRepo) Create(h *model.LlmHistory) error {
	h.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *h)
	return nil
}

func (f *fakeLlmHistoryRepo) FindByUserScope(userID, projectID, questionID uint) ([]model.LlmHistory, error) {
	var out []model.LlmHistory
	for _, h := range f.rows {
		if h.UserID == userID && h.ProjectID == projectID && h.QuestionID == questionID {
			out = append(out, h)
		}
	}
	return out, nil
}

// captureMailer records outgoing mail so tests can read OTPs back out.
type captureMailer struct {
	sent []struct{ To, Subject, Body string }
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, struct{ To, Subject, Body string }{to, subject, body})
	return nil
}

// failingPromptGenerator always errors, for exercising rollback paths.
type failingPromptGenerator struct{}

func (failingPromptGenerator) Generate(context.Context, []model.Answer) (string, error) {
	return "", errors.New("prompt backend unavailable")
}
