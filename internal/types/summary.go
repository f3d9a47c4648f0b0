package types

// MergedSummary represents cross-agent aggregated statistics computed
// over the set of fresh reports.
type MergedSummary struct {
	CPUs   CPUSummary    `json:"cpus"`
	Memory MemorySummary `json:"memory"`
	Disk   DiskSummary   `json:"disk"`
	GPUs   GPUSummary    `json:"gpus"`
}

// CPUSummary represents aggregated CPU statistics. UsagePercent is a
// core-weighted average.
type CPUSummary struct {
	Cores        int     `json:"cores"`
	UsagePercent float64 `json:"usage_percent"`
}

// MemorySummary represents aggregated memory statistics
type MemorySummary struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskSummary represents aggregated disk statistics across every disk of
// every report
type DiskSummary struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// GPUSummary represents aggregated GPU statistics. UsagePercent is an
// unweighted per-unit average.
type GPUSummary struct {
	UsagePercent       float64 `json:"usage_percent"`
	MemoryTotalGB      float64 `json:"memory_total_gb"`
	MemoryUsedGB       float64 `json:"memory_used_gb"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
}
