package tutil

import (
	"net"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ael-launcher/catalog/pkg/aelstub"
	"github.com/stretchr/testify/require"
)

// IsIntegrationTest reports whether AEL_TEST=integration is set. Integration tests talk
// to a real catalog server configured through AEL_HOST and AEL_PORT.
func IsIntegrationTest() bool {
	testType := os.Getenv("AEL_TEST")
	return strings.ToLower(testType) == "integration"
}

// StartStubCatalog serves stor from a stub catalog on a loopback port for the lifetime
// of t and returns the host and port to point a client at. A nil stor starts an empty
// in-memory catalog.
func StartStubCatalog(t *testing.T, stor aelstub.CatalogStor) (string, int) {
	t.Helper()

	if stor == nil {
		stor = aelstub.NewInMemoryCatalogStor()
	}

	ts := httptest.NewServer(aelstub.NewServer(stor, nil))
	t.Cleanup(ts.Close)

	host, portStr, err := net.SplitHostPort(ts.Listener.Addr().String())
	require.NoError(t, err)

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return host, port
}
