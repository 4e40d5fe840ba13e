package interviewprovider

import (
	"testing"

	"github.com/stretchr/testify/require"

	"interview-trainer-backend/models"
	interviewapimodels "interview-trainer-backend/models/api/interview"
	dbmodels "interview-trainer-backend/models/db"
)

type fakeQuestionStore struct {
	common []dbmodels.Question
	pool   []dbmodels.Question

	pickedRole       int
	pickedDifficulty *models.Difficulty
	pickedLimit      int
}

func (f *fakeQuestionStore) Create(rec dbmodels.Question) (int, error) { return 0, nil }
func (f *fakeQuestionStore) Update(id int, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeQuestionStore) Delete(id int) error { return nil }
func (f *fakeQuestionStore) GetByID(id int) (*dbmodels.Question, error) {
	return nil, nil
}
func (f *fakeQuestionStore) ListByRole(jobRoleID int) ([]dbmodels.Question, error) {
	return nil, nil
}
func (f *fakeQuestionStore) ListByUser(userID int) ([]dbmodels.Question, error) {
	return nil, nil
}
func (f *fakeQuestionStore) ListCommonPool() ([]dbmodels.Question, error) {
	return f.common, nil
}
func (f *fakeQuestionStore) PickRandom(jobRoleID int, difficulty *models.Difficulty, excludeIDs []int, limit int) ([]dbmodels.Question, error) {
	f.pickedRole = jobRoleID
	f.pickedDifficulty = difficulty
	f.pickedLimit = limit
	if limit > len(f.pool) {
		limit = len(f.pool)
	}
	return f.pool[:limit], nil
}

type fakeInterviewStore struct {
	created dbmodels.Interview
	nextID  int
}

func (f *fakeInterviewStore) Create(rec dbmodels.Interview) (int, error) {
	f.created = rec
	return f.nextID, nil
}
func (f *fakeInterviewStore) GetByID(id int) (*dbmodels.Interview, error) { return nil, nil }
func (f *fakeInterviewStore) ListByUser(userID int) ([]dbmodels.Interview, error) {
	return nil, nil
}
func (f *fakeInterviewStore) Complete(id int, duration int) error { return nil }
func (f *fakeInterviewStore) Delete(id int) error                 { return nil }

type fakeIvQuestionStore struct {
	batch []dbmodels.InterviewQuestion
}

func (f *fakeIvQuestionStore) CreateBatch(recs []dbmodels.InterviewQuestion) error {
	f.batch = recs
	return nil
}
func (f *fakeIvQuestionStore) Get(interviewID, questionID int) (*dbmodels.InterviewQuestion, error) {
	return nil, nil
}
func (f *fakeIvQuestionStore) ListByInterview(interviewID int) ([]dbmodels.InterviewQuestion, error) {
	return nil, nil
}
func (f *fakeIvQuestionStore) MarkAnswered(interviewID, questionID int, answer string, duration int, clipKey string) error {
	return nil
}

type fakeJobRoleStore struct {
	roles map[int]dbmodels.JobRole
}

func (f *fakeJobRoleStore) List() ([]dbmodels.JobRole, error) { return nil, nil }
func (f *fakeJobRoleStore) GetByID(id int) (*dbmodels.JobRole, error) {
	rec, ok := f.roles[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func question(id, roleID int, difficulty models.Difficulty) dbmodels.Question {
	return dbmodels.Question{
		BaseModel:       dbmodels.BaseModel{ID: id},
		JobRoleID:       roleID,
		Difficulty:      difficulty,
		DurationMinutes: 2,
	}
}

func TestInterviewCreate(t *testing.T) {
	common := []dbmodels.Question{
		question(1, dbmodels.CommonPoolRoleID, models.DifficultyEasy),
		question(2, dbmodels.CommonPoolRoleID, models.DifficultyEasy),
	}
	pool := []dbmodels.Question{
		question(10, 1, models.DifficultyMedium),
		question(11, 1, models.DifficultyHard),
		question(12, 1, models.DifficultyEasy),
	}

	newImpl := func(qs *fakeQuestionStore, is *fakeInterviewStore, ivs *fakeIvQuestionStore) impl {
		return impl{
			store:         is,
			questionStore: qs,
			ivQuestStore:  ivs,
			jobRoleStore: &fakeJobRoleStore{roles: map[int]dbmodels.JobRole{
				1: {BaseModel: dbmodels.BaseModel{ID: 1}, Name: "Software Engineer"},
			}},
		}
	}

	t.Run("warm-up questions come first, remainder is a role pick", func(t *testing.T) {
		qs := &fakeQuestionStore{common: common, pool: pool}
		is := &fakeInterviewStore{nextID: 7}
		ivs := &fakeIvQuestionStore{}

		resp, err := newImpl(qs, is, ivs).Create(1, interviewapimodels.CreateRequest{JobRoleID: 1})
		require.NoError(t, err)
		require.Equal(t, 7, resp.InterviewID)
		require.Len(t, resp.Questions, models.DefaultQuestionCount)
		require.Equal(t, 1, resp.Questions[0].ID)
		require.Equal(t, 2, resp.Questions[1].ID)
		require.Equal(t, 2, qs.pickedLimit)
		require.Equal(t, 1, qs.pickedRole)
		require.Nil(t, qs.pickedDifficulty)

		require.Len(t, ivs.batch, models.DefaultQuestionCount)
		for _, ivq := range ivs.batch {
			require.Equal(t, 7, ivq.InterviewID)
			require.False(t, ivq.IsAnswered)
		}
		require.Equal(t, models.InterviewStatusPending, is.created.Status)
		require.Equal(t, models.DefaultQuestionCount, is.created.NQuestions)
	})

	t.Run("difficulty filter reaches the random pick", func(t *testing.T) {
		qs := &fakeQuestionStore{common: common, pool: pool}
		is := &fakeInterviewStore{nextID: 8}
		ivs := &fakeIvQuestionStore{}
		difficulty := models.DifficultyHard

		_, err := newImpl(qs, is, ivs).Create(1, interviewapimodels.CreateRequest{
			JobRoleID:  1,
			Difficulty: &difficulty,
			NQuestions: 3,
		})
		require.NoError(t, err)
		require.NotNil(t, qs.pickedDifficulty)
		require.Equal(t, models.DifficultyHard, *qs.pickedDifficulty)
		require.Equal(t, 1, qs.pickedLimit)
	})

	t.Run("requested count below the warm-up pool truncates it", func(t *testing.T) {
		qs := &fakeQuestionStore{common: common, pool: pool}
		is := &fakeInterviewStore{nextID: 9}
		ivs := &fakeIvQuestionStore{}

		resp, err := newImpl(qs, is, ivs).Create(1, interviewapimodels.CreateRequest{
			JobRoleID:  1,
			NQuestions: 1,
		})
		require.NoError(t, err)
		require.Len(t, resp.Questions, 1)
		require.Equal(t, 1, resp.Questions[0].ID)
		require.Zero(t, qs.pickedLimit)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		qs := &fakeQuestionStore{common: common, pool: pool}
		is := &fakeInterviewStore{}
		ivs := &fakeIvQuestionStore{}

		_, err := newImpl(qs, is, ivs).Create(1, interviewapimodels.CreateRequest{JobRoleID: 99})
		require.Error(t, err)
	})
}
