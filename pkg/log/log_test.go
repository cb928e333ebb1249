package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T) (*logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	return &logger{entry: logrus.NewEntry(base)}, buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "  ")
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_Desenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	l, buf := captureLogger(t)

	l.WithFields(Fields{
		"account_id":     "act_1",
		"campaign_count": 3,
		"remote_addr":    "10.0.0.1",
	}).Info("hierarquia montada")

	out := buf.String()
	assert.Contains(t, out, `"account_id":"act_1"`)
	assert.Contains(t, out, `"campaign_count":3`)
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_Producao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, buf := captureLogger(t)

	ctx, _ := WithCorrelationID(context.Background(), "abc")
	l.WithContext(ctx).WithField("remote_addr", "10.0.0.1").Info("ok")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"correlation_id":"abc"`)
	assert.Contains(t, out, `"remote_addr":"10.0.0.1"`)
}
