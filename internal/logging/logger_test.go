package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dagsim/internal/logging"
)

func TestInitReturnsAUsableLogger(t *testing.T) {
	logger := logging.Init(false)
	require.NotNil(t, logger)
}

func TestWithRunIDTagsEveryLine(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tagged := logging.WithRunID(zap.New(core), "abcd1234")
	tagged.Info("first")
	tagged.Debug("second")
	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		require.Equal(t, "abcd1234", entry.ContextMap()["run"])
	}
}
