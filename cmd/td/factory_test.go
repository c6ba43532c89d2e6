package main

import (
	"context"
	"path/filepath"
	"testing"

	"daily-todo/internal/config"
	"daily-todo/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TD_ENV", tt.value)
			assert.Equal(t, tt.expected, getEnvironment())
		})
	}
}

func TestRepositoryFactory_Testing(t *testing.T) {
	repo, err := NewRepositoryFactory(Testing).CreateRepository(config.NewConfig())
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, &sqlite.Todo{Date: "2024-06-01", Content: "Buy milk"}))
	todos, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestRepositoryFactory_Production(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "td")

	repo, err := NewRepositoryFactory(Production).CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	todos, err := repo.QueryByDate(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, todos)
}
