package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetmeter/internal/types"
)

func TestMergeEmpty(t *testing.T) {
	assert.Nil(t, Merge(nil))
	assert.Nil(t, Merge([]types.Report{}))
}

func TestMergeCPUWeighting(t *testing.T) {
	reports := []types.Report{
		{ID: "a", CPUs: []types.CPUInfo{{Cores: 4, UsagePercent: 50}}},
		{ID: "b", CPUs: []types.CPUInfo{{Cores: 4, UsagePercent: 100}}},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)
	assert.Equal(t, 8, summary.CPUs.Cores)
	assert.Equal(t, 75.00, summary.CPUs.UsagePercent)
}

func TestMergeCPUWeightingUneven(t *testing.T) {
	// 12 cores at 10% and 4 cores at 90%: (120 + 360) / 16 = 30.
	reports := []types.Report{
		{ID: "a", CPUs: []types.CPUInfo{{Cores: 12, UsagePercent: 10}}},
		{ID: "b", CPUs: []types.CPUInfo{{Cores: 4, UsagePercent: 90}}},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)
	assert.Equal(t, 16, summary.CPUs.Cores)
	assert.Equal(t, 30.00, summary.CPUs.UsagePercent)
}

func TestMergeGPUUnweightedAverage(t *testing.T) {
	// GPU usage is a per-unit mean regardless of each GPU's memory size.
	reports := []types.Report{
		{ID: "a", GPUs: []types.GPUInfo{{UsagePercent: 10, MemoryTotalGB: 80}}},
		{ID: "b", GPUs: []types.GPUInfo{{UsagePercent: 20, MemoryTotalGB: 8}}},
		{ID: "c", GPUs: []types.GPUInfo{{UsagePercent: 90, MemoryTotalGB: 16}}},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)
	assert.Equal(t, 40.00, summary.GPUs.UsagePercent)
	assert.Equal(t, 104.00, summary.GPUs.MemoryTotalGB)
}

func TestMergeMemoryAndDisk(t *testing.T) {
	reports := []types.Report{
		{
			ID:     "a",
			Memory: &types.MemoryInfo{TotalGB: 64, UsedGB: 16},
			Disks: []types.DiskInfo{
				{Mount: "/", TotalGB: 500, UsedGB: 100},
				{Mount: "/data", TotalGB: 1000, UsedGB: 400},
			},
		},
		{
			ID:     "b",
			Memory: &types.MemoryInfo{TotalGB: 32, UsedGB: 8},
			Disks:  []types.DiskInfo{{Mount: "/", TotalGB: 500, UsedGB: 250}},
		},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)

	assert.Equal(t, 96.00, summary.Memory.TotalGB)
	assert.Equal(t, 24.00, summary.Memory.UsedGB)
	assert.Equal(t, 25.00, summary.Memory.UsagePercent)

	assert.Equal(t, 2000.00, summary.Disk.TotalGB)
	assert.Equal(t, 750.00, summary.Disk.UsedGB)
	assert.Equal(t, 37.50, summary.Disk.UsagePercent)
}

func TestMergeZeroGuards(t *testing.T) {
	reports := []types.Report{
		{
			ID:     "a",
			CPUs:   []types.CPUInfo{{Cores: 0, UsagePercent: 50}},
			Memory: &types.MemoryInfo{TotalGB: 0, UsedGB: 0},
			Disks:  []types.DiskInfo{{TotalGB: 0, UsedGB: 0}},
		},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)
	assert.Zero(t, summary.CPUs.UsagePercent)
	assert.Zero(t, summary.Memory.UsagePercent)
	assert.Zero(t, summary.Disk.UsagePercent)
	assert.Zero(t, summary.GPUs.UsagePercent)
	assert.Zero(t, summary.GPUs.MemoryUsagePercent)
}

func TestMergeMissingSections(t *testing.T) {
	// A bare report with just an id is valid and contributes zero.
	reports := []types.Report{
		{ID: "bare"},
		{ID: "full", CPUs: []types.CPUInfo{{Cores: 8, UsagePercent: 25}}},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)
	assert.Equal(t, 8, summary.CPUs.Cores)
	assert.Equal(t, 25.00, summary.CPUs.UsagePercent)
	assert.Zero(t, summary.Memory.TotalGB)
}

func TestMergeDisjointSetsAssociative(t *testing.T) {
	setA := []types.Report{
		{ID: "a1", CPUs: []types.CPUInfo{{Cores: 4, UsagePercent: 40}}},
		{ID: "a2", CPUs: []types.CPUInfo{{Cores: 8, UsagePercent: 60}}},
	}
	setB := []types.Report{
		{ID: "b1", CPUs: []types.CPUInfo{{Cores: 16, UsagePercent: 20}}},
	}

	merged := Merge(append(append([]types.Report{}, setA...), setB...))
	mergedA := Merge(setA)
	mergedB := Merge(setB)

	require.NotNil(t, merged)
	require.NotNil(t, mergedA)
	require.NotNil(t, mergedB)
	assert.Equal(t, mergedA.CPUs.Cores+mergedB.CPUs.Cores, merged.CPUs.Cores)
}

func TestMergeRounding(t *testing.T) {
	reports := []types.Report{
		{ID: "a", CPUs: []types.CPUInfo{{Cores: 3, UsagePercent: 33.333}}},
		{ID: "b", Memory: &types.MemoryInfo{TotalGB: 3, UsedGB: 1}},
	}

	summary := Merge(reports)
	require.NotNil(t, summary)
	assert.Equal(t, 33.33, summary.CPUs.UsagePercent)
	assert.Equal(t, 33.33, summary.Memory.UsagePercent)
}
