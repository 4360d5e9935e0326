package di

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-testing-examples/internal/config"
	"go-testing-examples/internal/usecase/calculator"
	"go-testing-examples/internal/usecase/user"
	apperrors "go-testing-examples/pkg/errors"
	"go-testing-examples/pkg/logger"
)

// loadConfig writes app.env into a temp dir and loads it, with the
// overlapping environment variables cleared.
func loadConfig(t *testing.T, lines ...string) (*config.Config, string) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT_PATH", "SERVICE_NAME"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")
	content := strings.Join(append(lines, "LOG_OUTPUT_PATH="+logPath), "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	return cfg, logPath
}

func TestNewContainer_DivideThroughConfig(t *testing.T) {
	cfg, logPath := loadConfig(t, "APP_ENV=test", "LOG_LEVEL=debug", "LOG_FORMAT=json", "SERVICE_NAME=container-test")

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), logger.RequestIDKey, "req-7")

	resp, err := c.Calculator.Divide(ctx, calculator.BinaryRequest{A: 10, B: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Value)

	resp, err = c.Calculator.Divide(ctx, calculator.BinaryRequest{A: 10, B: 0})
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, apperrors.ErrDivisionByZero))

	require.NoError(t, c.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"message":"divide failed"`)
	assert.Contains(t, out, `"code":"InvalidArgument"`)
	assert.Contains(t, out, `"request_id":"req-7"`)
	assert.Contains(t, out, `"environment":"test"`)
	assert.Contains(t, out, `"service":"container-test"`)
}

func TestNewContainer_InspectUser(t *testing.T) {
	cfg, _ := loadConfig(t, "LOG_FORMAT=json")

	c, err := NewContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, c.Close()) })

	resp, err := c.Users.Inspect(context.Background(), user.InspectUserRequest{
		Name:  "Bob",
		Email: "bob@example.com",
		Age:   18,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdult)
	assert.True(t, resp.EmailValid)
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg, _ := loadConfig(t, "LOG_FORMAT=xml")

	c, err := NewContainer(cfg)

	assert.Nil(t, c)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, "Format", verr.Field)
}

func TestLoggerConfig(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Environment: "production"},
		Logger: config.LoggerConfig{
			Level:          "warn",
			Format:         "json",
			OutputPath:     "stderr",
			EnableSampling: true,
			ServiceName:    "svc",
			ServiceVersion: "2.0.0",
		},
	}

	assert.Equal(t, logger.Config{
		Level:       "warn",
		Format:      "json",
		Output:      "stderr",
		Sampling:    true,
		Service:     "svc",
		Version:     "2.0.0",
		Environment: "production",
	}, loggerConfig(cfg))
}
