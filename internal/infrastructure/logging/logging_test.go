package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studyquest/backend/internal/infrastructure/logging"
)

func TestNew_Development(t *testing.T) {
	logger, sync := logging.New(false)
	assert.NotNil(t, logger)
	logger.Info("hello", "component", "test")
	_ = sync()
}
