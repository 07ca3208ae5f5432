package usecases_test

import (
	"context"
	"testing"
	"ticketing-service/config"
	"ticketing-service/internal/module/auth/mocks"
	"ticketing-service/internal/module/auth/models/request"
	"ticketing-service/internal/module/auth/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"
	log_internal "ticketing-service/internal/pkg/log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc           usecases.Usecase
	repoMock     *mocks.Repositories
	logMock      log.Logger
	enqueuerMock *stubEnqueuer
)

type stubEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (s *stubEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.tasks = append(s.tasks, task)
	return &asynq.TaskInfo{ID: "1"}, nil
}

func testConfig() *config.AdminConfig {
	return &config.AdminConfig{
		Password:         "admin123",
		SessionTTL:       24 * time.Hour,
		MaxLoginAttempts: 5,
		LoginAttemptTTL:  15 * time.Minute,
	}
}

func setup() {
	repoMock = new(mocks.Repositories)
	enqueuerMock = &stubEnqueuer{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()

	var err error
	uc, err = usecases.New(repoMock, logMock, enqueuerMock, testConfig())
	if err != nil {
		panic(err)
	}
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()
	ip := "203.0.113.10"

	t.Run("success", func(t *testing.T) {
		// mock data
		payloadMock := request.Login{Password: "admin123"}

		// mock repo
		repoMock.On("IncrementLoginAttempts", ctx, ip).Return(int64(1), nil).Once()
		repoMock.On("CreateSession", ctx, mock.AnythingOfType("*entity.Session")).Return(nil).Once()
		repoMock.On("ResetLoginAttempts", ctx, ip).Return(nil).Once()

		// test
		resp, err := uc.Login(ctx, &payloadMock, ip)

		// assert
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.ExpiresAt)
		assert.Len(t, enqueuerMock.tasks, 1)
	})

	t.Run("wrong password", func(t *testing.T) {
		repoMock = new(mocks.Repositories)
		rebuilt, err := usecases.New(repoMock, logMock, enqueuerMock, testConfig())
		assert.NoError(t, err)
		uc = rebuilt

		payloadMock := request.Login{Password: "letmein"}

		repoMock.On("IncrementLoginAttempts", ctx, ip).Return(int64(2), nil).Once()

		_, err = uc.Login(ctx, &payloadMock, ip)

		assert.Error(t, err)
		assert.Equal(t, 401, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "CreateSession", ctx, mock.AnythingOfType("*entity.Session"))
	})

	t.Run("rate limited", func(t *testing.T) {
		payloadMock := request.Login{Password: "admin123"}

		repoMock.On("IncrementLoginAttempts", ctx, ip).Return(int64(6), nil).Once()

		_, err := uc.Login(ctx, &payloadMock, ip)

		assert.Error(t, err)
		assert.Equal(t, 429, errors.GetCode(err))
	})

	t.Run("enqueue failure does not fail login", func(t *testing.T) {
		payloadMock := request.Login{Password: "admin123"}
		enqueuerMock.err = assert.AnError
		defer func() { enqueuerMock.err = nil }()

		repoMock.On("IncrementLoginAttempts", ctx, ip).Return(int64(1), nil).Once()
		repoMock.On("CreateSession", ctx, mock.AnythingOfType("*entity.Session")).Return(nil).Once()
		repoMock.On("ResetLoginAttempts", ctx, ip).Return(nil).Once()

		resp, err := uc.Login(ctx, &payloadMock, ip)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestLogout(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repoMock.On("DeleteSession", ctx, "token-1").Return(nil).Once()

		err := uc.Logout(ctx, "token-1")

		assert.NoError(t, err)
	})
}

func TestExpireSession(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repoMock.On("DeleteSession", ctx, "token-2").Return(nil).Once()

		err := uc.ExpireSession(ctx, "token-2")

		assert.NoError(t, err)
	})
}
