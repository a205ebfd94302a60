package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ibradi0157/mon-blog/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics_LabelsByRouteTemplate(t *testing.T) {
	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)

	r := gin.New()
	r.Use(RequestMetrics())
	r.GET("/pages/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })

	require.Equal(t, http.StatusOK, get(r, "/pages/a"))
	require.Equal(t, http.StatusOK, get(r, "/pages/b"))
	require.Equal(t, http.StatusNotFound, get(r, "/nope"))

	// one series for the template, one for unmatched paths
	require.Equal(t, before+2, testutil.CollectAndCount(metrics.HTTPRequestDuration))
}
