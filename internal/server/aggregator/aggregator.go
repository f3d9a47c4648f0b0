// Package aggregator computes cross-agent summaries from a snapshot of
// fresh reports. Merge is pure: it never touches shared state, so callers
// must copy the fresh set out of the store before handing it over.
package aggregator

import (
	"math"

	"fleetmeter/internal/types"
)

// Merge computes a weighted cross-agent summary. CPU usage is weighted by
// core count; GPU usage is an unweighted per-unit mean, since GPUs have no
// core-count analog to weight by. Missing sections contribute zero.
// Returns nil when no reports are given.
func Merge(reports []types.Report) *types.MergedSummary {
	if len(reports) == 0 {
		return nil
	}

	var (
		totalCores  int
		cpuUsageSum float64

		memTotal float64
		memUsed  float64

		diskTotal float64
		diskUsed  float64

		gpuCount    int
		gpuUsageSum float64
		gpuMemTotal float64
		gpuMemUsed  float64
	)

	for _, r := range reports {
		for _, c := range r.CPUs {
			totalCores += c.Cores
			cpuUsageSum += c.UsagePercent * float64(c.Cores)
		}

		// One memory block per report; disks are flattened across reports.
		if r.Memory != nil {
			memTotal += r.Memory.TotalGB
			memUsed += r.Memory.UsedGB
		}
		for _, d := range r.Disks {
			diskTotal += d.TotalGB
			diskUsed += d.UsedGB
		}

		for _, g := range r.GPUs {
			gpuCount++
			gpuUsageSum += g.UsagePercent
			gpuMemTotal += g.MemoryTotalGB
			gpuMemUsed += g.MemoryUsedGB
		}
	}

	cpuUsage := 0.0
	if totalCores > 0 {
		cpuUsage = cpuUsageSum / float64(totalCores)
	}

	gpuUsage := 0.0
	if gpuCount > 0 {
		gpuUsage = gpuUsageSum / float64(gpuCount)
	}

	return &types.MergedSummary{
		CPUs: types.CPUSummary{
			Cores:        totalCores,
			UsagePercent: round2(cpuUsage),
		},
		Memory: types.MemorySummary{
			TotalGB:      round2(memTotal),
			UsedGB:       round2(memUsed),
			UsagePercent: round2(percent(memUsed, memTotal)),
		},
		Disk: types.DiskSummary{
			TotalGB:      round2(diskTotal),
			UsedGB:       round2(diskUsed),
			UsagePercent: round2(percent(diskUsed, diskTotal)),
		},
		GPUs: types.GPUSummary{
			UsagePercent:       round2(gpuUsage),
			MemoryTotalGB:      round2(gpuMemTotal),
			MemoryUsedGB:       round2(gpuMemUsed),
			MemoryUsagePercent: round2(percent(gpuMemUsed, gpuMemTotal)),
		},
	}
}

// percent guards against a zero denominator
func percent(used, total float64) float64 {
	if total == 0 {
		return 0
	}
	return used / total * 100
}

// round2 rounds to 2 decimal places for presentation
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
