package main

import (
	"fmt"
	"os"

	"daily-todo/internal/config"
	"daily-todo/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository(cfg)
	case Testing:
		return config.CreateTestRepository()
	default:
		return config.CreateRepository(cfg)
	}
}

// createDevelopmentRepository keeps the database in the working directory
// so experiments never touch ~/.td.
func (rf *RepositoryFactory) createDevelopmentRepository(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions("td.db", sqlite.Options{
		QueryTimeout: cfg.GetQueryTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// getEnvironment determines the current environment from TD_ENV
func getEnvironment() Environment {
	switch os.Getenv("TD_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
