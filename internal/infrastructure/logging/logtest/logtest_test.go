package logtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studyquest/backend/internal/infrastructure/logging/logtest"
)

func TestNew(t *testing.T) {
	logger := logtest.New(t)
	assert.NotNil(t, logger)
	logger.Warn("routed through t.Log", "n", 1)
}
