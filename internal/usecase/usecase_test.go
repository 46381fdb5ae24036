package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// fakeCache is an in-memory MatchCache good enough for cache-path tests.
type fakeCache struct {
	store map[string][]byte
	hits  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = raw
	c.sets++
	return nil
}

func TestAuthRegister(t *testing.T) {
	mockRepo := new(MockUserRepo)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(mockRepo, tokens)

	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil).Once()

		_, err := uc.Register(context.Background(), "Someone", "taken@example.com", "password1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Should lowercase email and hash password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once().
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				assert.Equal(t, "new@example.com", u.Email)
				assert.NotEqual(t, "password1", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")))
			})

		user, err := uc.Register(context.Background(), "Someone", "  NEW@Example.com ", "password1")
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthLogin(t *testing.T) {
	mockRepo := new(MockUserRepo)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(mockRepo, tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	stored := &domain.User{ID: "u1", Email: "user@example.com", PasswordHash: string(hash)}

	t.Run("Should return same error for unknown email and wrong password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()
		_, _, errUnknown := uc.Login(context.Background(), "ghost@example.com", "whatever")

		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()
		_, _, errWrongPass := uc.Login(context.Background(), "user@example.com", "wrong")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("Should issue a verifiable token on success", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()

		token, user, err := uc.Login(context.Background(), "user@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		claims, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})
}

func TestJobValidation(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)
	ctx := context.Background()

	t.Run("Should reject empty title", func(t *testing.T) {
		err := uc.CreateJob(ctx, &domain.Job{
			Description:    "desc",
			RequiredSkills: []string{"Go"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title")
	})

	t.Run("Should reject missing skills", func(t *testing.T) {
		err := uc.CreateJob(ctx, &domain.Job{Title: "Engineer", Description: "desc"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "skill")
	})

	t.Run("Should reject inverted salary range", func(t *testing.T) {
		err := uc.CreateJob(ctx, &domain.Job{
			Title:          "Engineer",
			Description:    "desc",
			RequiredSkills: []string{"Go"},
			SalaryMin:      200000,
			SalaryMax:      100000,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SalaryMin")
	})

	t.Run("Should create valid job", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once()
		err := uc.CreateJob(ctx, &domain.Job{
			Title:          "Engineer",
			Description:    "desc",
			RequiredSkills: []string{"Go"},
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestJobUpdatePreservesCreatedAt(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("GetByID", ctx, int64(7)).
		Return(&domain.Job{ID: 7, Title: "Old", CreatedAt: created}, nil).Once()
	mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Once().
		Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, created, j.CreatedAt)
			assert.True(t, j.UpdatedAt.After(created))
		})

	err := uc.UpdateJob(ctx, &domain.Job{
		ID:             7,
		Title:          "New Title",
		Description:    "desc",
		RequiredSkills: []string{"Go"},
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestJobNotFound(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	_, err := uc.GetJobDetails(ctx, 404)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = uc.DeleteJob(ctx, 404)
	assert.Error(t, err)
}

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	validate := validator.New()
	uc := usecase.NewProfileUsecase(mockRepo, validate)

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetProfile(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		ctx := context.Background() // keys missing
		_, err := uc.GetProfile(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should force UserID from context on update", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{
			UserID: "hacker_try",
			Skills: []string{"Go"},
		}

		mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil).Once().
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.CandidateProfile)
				assert.Equal(t, "user1", p.UserID)
			})

		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject profile without skills", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		err := uc.UpdateProfile(ctx, &domain.CandidateProfile{})
		assert.Error(t, err)
	})
}

func TestMatchJobs(t *testing.T) {
	ctx := context.Background()

	jobs := []domain.Job{
		{
			ID:              1,
			Title:           "Backend Engineer",
			Description:     "Build APIs in Go with PostgreSQL.",
			RequiredSkills:  []string{"Go", "SQL", "Docker"},
			Location:        "Remote",
			ExperienceYears: 3,
			UpdatedAt:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              2,
			Title:           "Graphic Designer",
			Description:     "Design brand assets and illustrations.",
			RequiredSkills:  []string{"Photoshop", "Illustrator"},
			Location:        "Paris",
			ExperienceYears: 2,
			UpdatedAt:       time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	input := domain.MatchInput{
		Skills:          []string{"Go", "SQL"},
		Bio:             "Backend developer who likes APIs and PostgreSQL",
		ExperienceYears: 4,
		DesiredLocation: "Berlin",
	}

	t.Run("Should reject empty skills", func(t *testing.T) {
		uc := usecase.NewMatchUsecase(new(MockJobRepo), new(MockProfileRepo), nil, time.Minute)
		_, err := uc.MatchJobs(ctx, domain.MatchInput{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "skill")
	})

	t.Run("Should reject negative experience and limit", func(t *testing.T) {
		uc := usecase.NewMatchUsecase(new(MockJobRepo), new(MockProfileRepo), nil, time.Minute)

		_, err := uc.MatchJobs(ctx, domain.MatchInput{Skills: []string{"Go"}, ExperienceYears: -1})
		assert.Error(t, err)

		_, err = uc.MatchJobs(ctx, domain.MatchInput{Skills: []string{"Go"}, Limit: -1})
		assert.Error(t, err)
	})

	t.Run("Should return empty slice when no jobs stored", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("FetchAll", ctx).Return([]domain.Job{}, nil).Once()
		uc := usecase.NewMatchUsecase(mockJobs, new(MockProfileRepo), nil, time.Minute)

		results, err := uc.MatchJobs(ctx, input)
		assert.NoError(t, err)
		assert.NotNil(t, results)
		assert.Len(t, results, 0)
	})

	t.Run("Should rank the relevant job first with consistent scores", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("FetchAll", ctx).Return(jobs, nil).Once()
		uc := usecase.NewMatchUsecase(mockJobs, new(MockProfileRepo), nil, time.Minute)

		results, err := uc.MatchJobs(ctx, input)
		assert.NoError(t, err)
		assert.Len(t, results, 2)

		assert.Equal(t, int64(1), results[0].Job.ID)
		assert.Greater(t, results[0].OverallScore, results[1].OverallScore)
		assert.NotEmpty(t, results[0].Explanation)

		// Remote job scores full location match regardless of desired city
		assert.InDelta(t, 1.0, results[0].Scores.LocationMatch, 1e-9)

		weighted := 0.45*results[0].Scores.SkillMatch +
			0.30*results[0].Scores.TextSimilarity +
			0.15*results[0].Scores.ExperienceMatch +
			0.10*results[0].Scores.LocationMatch
		assert.InDelta(t, weighted, results[0].OverallScore, 1e-9)
	})

	t.Run("Should apply limit after ranking", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("FetchAll", ctx).Return(jobs, nil).Once()
		uc := usecase.NewMatchUsecase(mockJobs, new(MockProfileRepo), nil, time.Minute)

		limited := input
		limited.Limit = 1
		results, err := uc.MatchJobs(ctx, limited)
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0].Job.ID)
	})

	t.Run("Should serve repeat requests from cache", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("FetchAll", ctx).Return(jobs, nil).Twice()
		cache := newFakeCache()
		uc := usecase.NewMatchUsecase(mockJobs, new(MockProfileRepo), cache, time.Minute)

		first, err := uc.MatchJobs(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, 1, cache.sets)

		second, err := uc.MatchJobs(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, 1, cache.hits)
		assert.Equal(t, len(first), len(second))
		assert.Equal(t, first[0].Job.ID, second[0].Job.ID)
		assert.InDelta(t, first[0].OverallScore, second[0].OverallScore, 1e-9)
	})

	t.Run("Cache key changes when a job is updated", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		cache := newFakeCache()
		uc := usecase.NewMatchUsecase(mockJobs, new(MockProfileRepo), cache, time.Minute)

		mockJobs.On("FetchAll", ctx).Return(jobs, nil).Once()
		_, err := uc.MatchJobs(ctx, input)
		assert.NoError(t, err)

		touched := make([]domain.Job, len(jobs))
		copy(touched, jobs)
		touched[0].UpdatedAt = touched[0].UpdatedAt.Add(time.Hour)
		mockJobs.On("FetchAll", ctx).Return(touched, nil).Once()

		_, err = uc.MatchJobs(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, 0, cache.hits)
		assert.Equal(t, 2, cache.sets)
	})
}

func TestMatchForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 when no profile exists", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockProfiles.On("GetByUserID", ctx, "user1").Return(nil, nil).Once()
		uc := usecase.NewMatchUsecase(new(MockJobRepo), mockProfiles, nil, time.Minute)

		_, err := uc.MatchForUser(ctx, "user1", 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "profile not found")
	})

	t.Run("Should match with the saved profile", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockProfiles.On("GetByUserID", ctx, "user1").Return(&domain.CandidateProfile{
			UserID:          "user1",
			Skills:          []string{"Go"},
			ExperienceYears: 2,
		}, nil).Once()

		mockJobs := new(MockJobRepo)
		mockJobs.On("FetchAll", ctx).Return([]domain.Job{
			{ID: 1, Title: "Go Developer", Description: "Write Go services", RequiredSkills: []string{"Go"}},
		}, nil).Once()

		uc := usecase.NewMatchUsecase(mockJobs, mockProfiles, nil, time.Minute)
		results, err := uc.MatchForUser(ctx, "user1", 0)
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.InDelta(t, 1.0, results[0].Scores.SkillMatch, 1e-9)
	})
}
