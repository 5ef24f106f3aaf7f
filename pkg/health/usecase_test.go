package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/recruit/pkg/health"
)

type stub struct {
	name string
	err  error
}

func (s stub) Name() string { return s.name }

func (s stub) Check(context.Context) error { return s.err }

func TestReady(t *testing.T) {
	assert.NoError(t, health.NewService().Ready(context.Background()))
	assert.NoError(t, health.NewService(stub{name: "postgres"}, nil).Ready(context.Background()))

	down := errors.New("connection refused")
	err := health.NewService(stub{name: "postgres"}, stub{name: "redis", err: down}).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "redis")
}
