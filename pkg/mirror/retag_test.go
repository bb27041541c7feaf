package mirror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetag_Success(t *testing.T) {
	recordedRequests := make([]http.Request, 0)
	s := httptest.NewServer(prepareRegistryWithRecorder(&recordedRequests))
	defer s.Close()

	repo := refOnServer(s.URL, "myorg/app")
	seedRepository(t, repo, "1.0")

	err := Retag(repo+":1.0", repo+":latest")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"1.0", "latest"}, listRepository(t, repo))
	assert.Equal(t, 1, calculateAccessed(recordedRequests, "PUT", "/v2/myorg/app/manifests/latest"))
}

func TestRetag_AcrossRepositories(t *testing.T) {
	recordedRequests := make([]http.Request, 0)
	s := httptest.NewServer(prepareRegistryWithRecorder(&recordedRequests))
	defer s.Close()

	src := refOnServer(s.URL, "myorg/app")
	dst := refOnServer(s.URL, "mirror/app")
	seedRepository(t, src, "1.0")

	err := Retag(src+":1.0", dst+":1.0")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1.0"}, listRepository(t, dst))
}

func TestRetag_InvalidReferences(t *testing.T) {
	var ire *InvalidReferenceError

	err := Retag("not a reference", "myorg/app:latest")
	require.True(t, errors.As(err, &ire))
	assert.Equal(t, "not a reference", ire.Ref)

	err = Retag("myorg/app:1.0", "also not a reference")
	require.True(t, errors.As(err, &ire))
	assert.Equal(t, "also not a reference", ire.Ref)
}

func TestRetag_MissingSourceImage(t *testing.T) {
	recordedRequests := make([]http.Request, 0)
	s := httptest.NewServer(prepareRegistryWithRecorder(&recordedRequests))
	defer s.Close()

	repo := refOnServer(s.URL, "myorg/ghost")
	err := Retag(repo+":1.0", repo+":latest")
	var te *TransferError
	require.True(t, errors.As(err, &te))
}
