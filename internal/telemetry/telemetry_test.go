package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minh-dng/pubchem-go/internal/config"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	tel, err := Setup(context.Background(), "pubchem-test", config.OtlpConfig{})
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)

	_, span := tel.TracerProvider.Tracer("test").Start(context.Background(), "noop")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetupWithEndpoint(t *testing.T) {
	tel, err := Setup(context.Background(), "pubchem-test", config.OtlpConfig{
		HttpEndpoint: "http://127.0.0.1:4318",
		Headers:      map[string]string{"x-api-key": "secret"},
	})
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)
	assert.NoError(t, tel.Shutdown(context.Background()))
}
