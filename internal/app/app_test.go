package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arxlab/arxpoints/internal/config"
	"github.com/arxlab/arxpoints/internal/ratelimit"
)

type ApplicationSuite struct {
	suite.Suite
	app       *Application
	testError error
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestBuildLimiterWithoutRedis() {
	limiter, err := buildLimiter(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.IsType(&ratelimit.LocalLimiter{}, limiter)
}

func (s *ApplicationSuite) TestBuildLimiterBadRedisURL() {
	_, err := buildLimiter(context.Background(), &config.Config{RedisURL: "not-a-url"})

	s.Require().Error(err)
}
