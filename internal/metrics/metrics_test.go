package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "401"))
	ObserveHTTP("GET", 401)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "401")))
}

func TestObserveCallAndConnect(t *testing.T) {
	call := SocketCalls.WithLabelValues("device:update-status", "ok")
	conn := SocketConnects.WithLabelValues("error")
	beforeCall := testutil.ToFloat64(call)
	beforeConn := testutil.ToFloat64(conn)

	ObserveCall("device:update-status", "ok")
	ObserveConnect("error")

	assert.Equal(t, beforeCall+1, testutil.ToFloat64(call))
	assert.Equal(t, beforeConn+1, testutil.ToFloat64(conn))
}
