package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaladi/reuse/internal/client/geocoder"
	"github.com/shaladi/reuse/internal/config"
)

func TestNewGeocoder_NothingConfigured(t *testing.T) {
	g, err := NewGeocoder(&config.Config{}, nil)

	require.NoError(t, err)
	assert.IsType(t, geocoder.None{}, g)
}

func TestNewGeocoder_DirectoryOnly(t *testing.T) {
	g, err := NewGeocoder(&config.Config{GeocoderDirectoryFile: "../../config/buildings.yaml"}, nil)
	require.NoError(t, err)
	require.IsType(t, &geocoder.Directory{}, g)

	coords, err := g.Lookup(context.Background(), "E62-250")
	require.NoError(t, err)
	assert.NotNil(t, coords)
}

func TestNewGeocoder_DirectoryThenRemote(t *testing.T) {
	g, err := NewGeocoder(&config.Config{
		GeocoderDirectoryFile: "../../config/buildings.yaml",
		GeocoderURL:           "http://localhost:1",
		GeocoderMaxAttempts:   1,
	}, nil)
	require.NoError(t, err)

	chain, ok := g.(geocoder.Chain)
	require.True(t, ok)
	require.Len(t, chain, 2)
	assert.IsType(t, &geocoder.Resilient{}, chain[1])
}

func TestNewGeocoder_MissingDirectory(t *testing.T) {
	_, err := NewGeocoder(&config.Config{GeocoderDirectoryFile: "does-not-exist.yaml"}, nil)

	assert.Error(t, err)
}
