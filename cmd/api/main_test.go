package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/repository"
)

func TestStoreURL(t *testing.T) {
	cfg := &config.Config{
		AppEnv:         "test",
		MongoDBURI:     "mongodb://prod",
		TestMongoDBURI: "mongodb://test",
		DatabaseURL:    "postgres://db",
	}

	cfg.StoreDriver = repository.DriverMongo
	assert.Equal(t, "mongodb://test", storeURL(cfg))

	cfg.StoreDriver = repository.DriverPostgres
	assert.Equal(t, "postgres://db", storeURL(cfg))

	cfg.StoreDriver = repository.DriverMemory
	assert.Empty(t, storeURL(cfg))
}

func TestCORSConfig(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: "https://notes.example.com, http://localhost:5173"}

	c := corsConfig(cfg)
	assert.Equal(t, []string{"https://notes.example.com", "http://localhost:5173"}, c.AllowedOrigins)
	assert.NotEmpty(t, c.AllowedMethods)
}
