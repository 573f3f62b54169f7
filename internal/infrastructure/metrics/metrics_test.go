package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordResolution(t *testing.T) {
	before := testutil.ToFloat64(ReelResolutions.WithLabelValues("success"))
	RecordResolution("success")
	assert.Equal(t, before+1, testutil.ToFloat64(ReelResolutions.WithLabelValues("success")))
}

func TestRecordUpstreamCall(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues(UpstreamOutcomeNotFound))
	RecordUpstreamCall(UpstreamOutcomeNotFound, 120*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(UpstreamRequests.WithLabelValues(UpstreamOutcomeNotFound)))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("POST", "/v1/reels", "404"))
	RecordHTTPRequest("POST", "/v1/reels", 404, time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("POST", "/v1/reels", "404")))
}
