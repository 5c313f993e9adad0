package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGeocoder_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		switch r.URL.Query().Get("q") {
		case "E62-250":
			_, _ = w.Write([]byte(`[{"lat":"42.3613","lon":"-71.0829","display_name":"E62"}]`))
		case "broken":
			_, _ = w.Write([]byte(`[{"lat":"north","lon":"0"}]`))
		case "down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	g := NewHTTPGeocoder(server.URL, time.Second)
	ctx := context.Background()

	coords, err := g.Lookup(ctx, "E62-250")
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.InDelta(t, 42.3613, coords.Latitude, 1e-9)
	assert.InDelta(t, -71.0829, coords.Longitude, 1e-9)

	coords, err = g.Lookup(ctx, "nowhere")
	require.NoError(t, err)
	assert.Nil(t, coords)

	_, err = g.Lookup(ctx, "broken")
	assert.ErrorContains(t, err, "invalid latitude")

	_, err = g.Lookup(ctx, "down")
	assert.ErrorContains(t, err, "status 503")
}
