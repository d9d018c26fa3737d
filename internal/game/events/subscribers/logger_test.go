package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// Interested in all events by default
	assert.True(t, logSub.InterestedIn(events.TypeMatchStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGenerationAdvanced))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "MatchStartedEvent",
			event: events.NewMatchStartedEvent("test-match-1", 8, 16, 1, 100),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(8), logLine["tile_size"])
				assert.Equal(t, float64(16), logLine["cycle_a"])
				assert.Equal(t, float64(1), logLine["cycle_b"])
				assert.Equal(t, float64(100), logLine["generations"])
			},
		},
		{
			name:  "GenerationAdvancedEvent",
			event: events.NewGenerationAdvancedEvent("test-match-1", 7, -1, 2, 3, 2*time.Millisecond),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(7), logLine["generation"])
				assert.Equal(t, float64(-1), logLine["first"])
				assert.Equal(t, float64(2), logLine["last"])
				assert.Equal(t, float64(3), logLine["tracked"])
				assert.Equal(t, float64(2), logLine["step_time"])
			},
		},
		{
			name:  "MatchConvergedEvent",
			event: events.NewMatchConvergedEvent("test-match-1", 42),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(42), logLine["generation"])
			},
		},
		{
			name:  "MatchEndedEvent",
			event: events.NewMatchEndedEvent("test-match-1", 6, -6, 100, false, 5*time.Minute),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(6), logLine["score_a"])
				assert.Equal(t, float64(-6), logLine["score_b"])
				assert.Equal(t, false, logLine["converged"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
			},
		},
		{
			name:  "PhaseTransitionEvent",
			event: events.NewPhaseTransitionEvent("test-match-1", "Advancing", "Finished", "generation limit reached"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Advancing", logLine["from"])
				assert.Equal(t, "Finished", logLine["to"])
				assert.Equal(t, "generation limit reached", logLine["reason"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Match event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-match-1", logLine["match_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("filtered-logger", logger, zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeMatchStarted, events.TypeMatchEnded})

	assert.True(t, logSub.InterestedIn(events.TypeMatchStarted))
	assert.True(t, logSub.InterestedIn(events.TypeMatchEnded))
	assert.False(t, logSub.InterestedIn(events.TypeGenerationAdvanced))

	bus := events.NewEventBus()
	bus.Subscribe(logSub)

	bus.Publish(events.NewGenerationAdvancedEvent("m1", 1, 0, 0, 1, time.Millisecond))
	assert.Empty(t, buf.String(), "filtered events should not be logged")

	bus.Publish(events.NewMatchEndedEvent("m1", 0, 0, 1, false, time.Second))
	assert.NotEmpty(t, buf.String())

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeGenerationAdvanced))
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewMatchStartedEvent("m1", 8, 16, 1, 100))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("dev-logger", logger, zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewMatchConvergedEvent("dev-match", 12))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be present")
	assert.Equal(t, "match.converged", eventData["type"])
	assert.Equal(t, "dev-match", eventData["match_id"])
	assert.Equal(t, float64(12), eventData["generation"])
}
