package throttle_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/throttle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisLimiterTestSuite struct {
	suite.Suite
	container testcontainers.Container
	addr      string
}

func TestRedisLimiterTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration tests in short mode")
	}
	suite.Run(t, new(RedisLimiterTestSuite))
}

func (s *RedisLimiterTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(ctx, "")
	s.Require().NoError(err)
	s.addr = endpoint
}

func (s *RedisLimiterTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RedisLimiterTestSuite) TestFixedWindow() {
	ctx := context.Background()
	client, err := throttle.NewRedisClient(ctx, "", s.addr, "")
	s.Require().NoError(err)
	defer client.Close()

	limiter := throttle.NewRedisLimiter(client, throttle.Rate{Limit: 2, Period: time.Hour})

	for range 2 {
		ok, allowErr := limiter.Allow(ctx, "user:7:menu-items")
		s.Require().NoError(allowErr)
		s.True(ok)
	}

	ok, err := limiter.Allow(ctx, "user:7:menu-items")
	s.Require().NoError(err)
	s.False(ok, "third request in the window is denied")

	ok, err = limiter.Allow(ctx, "user:8:menu-items")
	s.Require().NoError(err)
	s.True(ok)

	keys, err := client.Keys(ctx, "throttle:user:7:menu-items:*").Result()
	s.Require().NoError(err)
	s.Require().Len(keys, 1)
	ttl, err := client.TTL(ctx, keys[0]).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisLimiterTestSuite) TestURLConnection() {
	ctx := context.Background()
	client, err := throttle.NewRedisClient(ctx, "redis://"+s.addr+"/1", "", "")
	s.Require().NoError(err)
	s.Require().NoError(client.Close())

	_, err = throttle.NewRedisClient(ctx, "", "127.0.0.1:1", "")
	s.Require().Error(err)
}
