package api

import (
	"context"
	"net/http"
	"tikiti/entities"
)

func (c *Client) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	var stats entities.DashboardStats
	err := c.do(ctx, "dashboard_stats", http.MethodGet, "/stats/dashboard", nil, nil, &stats)
	return stats, err
}
