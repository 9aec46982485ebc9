package console

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"magiccall-admin/internal/upstream"
)

const recentItems = 5

/* ===================== DASHBOARD VIEW ===================== */

// Dashboard fans out to the upstream and joins the results. The join is
// all-or-nothing: if any fetch fails the whole screen shows one aggregate
// error banner, and retry means re-requesting the endpoint.
func (h *Handlers) Dashboard(c *gin.Context) {
	var (
		stats            upstream.DashboardStats
		recentTopUps     []upstream.TopUp
		pendingPurchases []upstream.VoicePurchase
		recentCalls      []upstream.CallHistory
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		stats, err = h.Upstream.GetDashboardStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recentTopUps, err = h.Upstream.ListTopUps(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pendingPurchases, err = h.Upstream.ListPendingVoicePurchases(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recentCalls, err = h.Upstream.ListCallHistory(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":                 stats,
		"recentTopUps":          firstN(recentTopUps, recentItems),
		"pendingVoicePurchases": firstN(pendingPurchases, recentItems),
		"recentCalls":           firstN(recentCalls, recentItems),
	})
}
