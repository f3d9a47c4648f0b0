package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"fleetmeter/internal/server/config"
	"fleetmeter/internal/server/store"
	"fleetmeter/internal/types"
)

func newTestService(t *testing.T) *Service {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	svc := NewService(cfg, store.New(store.Config{
		FreshWindow:  cfg.Store.FreshWindow,
		ExpiryWindow: cfg.Store.ExpiryWindow,
	}), zaptest.NewLogger(t))
	t.Cleanup(svc.Stop)
	return svc
}

func TestIngestAndList(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.IngestReport(types.Report{ID: "node-1", Hostname: "user-ThinkStation-PX"}))
	require.NoError(t, svc.IngestReport(types.Report{ID: "node-2", Hostname: "db-host"}))

	listed := svc.ListReports()
	require.Len(t, listed, 2)

	// Sorted by id; renames applied with originals preserved.
	assert.Equal(t, "user-ThinkStation-PX1", listed[0].Hostname)
	assert.Equal(t, "user-ThinkStation-PX", listed[0].OldHostname)
	assert.False(t, listed[0].Offline)
	assert.Equal(t, "db-host", listed[1].Hostname)
	assert.Empty(t, listed[1].OldHostname)
}

func TestIngestRejectsMissingID(t *testing.T) {
	svc := newTestService(t)

	err := svc.IngestReport(types.Report{Hostname: "anonymous"})
	require.ErrorIs(t, err, types.ErrMissingReportID)
	assert.Empty(t, svc.ListReports())
}

func TestMergeReportsFilter(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.IngestReport(types.Report{
		ID:   "a",
		CPUs: []types.CPUInfo{{Cores: 4, UsagePercent: 50}},
	}))
	require.NoError(t, svc.IngestReport(types.Report{
		ID:   "b",
		CPUs: []types.CPUInfo{{Cores: 4, UsagePercent: 100}},
	}))

	all := svc.MergeReports(nil)
	require.NotNil(t, all)
	assert.Equal(t, 8, all.CPUs.Cores)
	assert.Equal(t, 75.00, all.CPUs.UsagePercent)

	only := svc.MergeReports([]string{"a"})
	require.NotNil(t, only)
	assert.Equal(t, 4, only.CPUs.Cores)

	assert.Nil(t, svc.MergeReports([]string{"ghost"}))
}

func TestMergeRenameTransparency(t *testing.T) {
	svc := newTestService(t)

	// Stored under the raw id even though listing renames the hostname.
	require.NoError(t, svc.IngestReport(types.Report{
		ID:       "px",
		Hostname: "user-ThinkStation-PX",
		GPUs:     []types.GPUInfo{{Model: "NVIDIA RTX 5880 Ada Generation", UsagePercent: 42}},
	}))

	summary := svc.MergeReports([]string{"px"})
	require.NotNil(t, summary)
	assert.Equal(t, 42.00, summary.GPUs.UsagePercent)
}

func TestHealthCheck(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.IngestReport(types.Report{ID: "node-1"}))

	status := svc.HealthCheck()
	assert.True(t, status.Healthy)
	assert.Equal(t, 1, status.Agents)
}
