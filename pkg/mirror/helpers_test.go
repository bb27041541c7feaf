package mirror

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/registry"
	"github.com/google/go-containerregistry/pkg/v1/random"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/stretchr/testify/require"
)

func prepareRegistryWithRecorder(recorded *[]http.Request) http.Handler {
	reg := registry.New(registry.WithReferrersSupport(true))
	var mu sync.Mutex
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		*recorded = append(*recorded, *r)
		mu.Unlock()
		reg.ServeHTTP(w, r)
	})
}

func calculateAccessed(rec []http.Request, method string, substr string) int {
	counter := 0
	for _, r := range rec {
		if r.Method == method && strings.Contains(r.URL.String(), substr) {
			counter += 1
		}
	}
	return counter
}

func refOnServer(serverUrl string, repository string) string {
	return strings.TrimPrefix(serverUrl, "http://") + "/" + repository
}

func seedRepository(t *testing.T, rawRepo string, tags ...string) {
	repo, err := name.NewRepository(rawRepo)
	require.NoError(t, err)
	for _, tag := range tags {
		img, err := random.Image(1024, 1)
		require.NoError(t, err)
		require.NoError(t, remote.Write(repo.Tag(tag), img))
	}
}

func listRepository(t *testing.T, rawRepo string) []string {
	repo, err := name.NewRepository(rawRepo)
	require.NoError(t, err)
	tags, err := remote.List(repo)
	require.NoError(t, err)
	return tags
}
