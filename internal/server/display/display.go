// Package display holds the freshness and cosmetic-rename policy applied
// when listing reports. It never touches stored data or aggregation:
// filtering and grouping always operate on raw stored identifiers.
package display

import (
	"time"

	"fleetmeter/internal/server/store"
	"fleetmeter/internal/types"
)

// Maps represents the immutable rename tables, loaded from configuration
// at startup and passed explicitly to Annotate.
type Maps struct {
	Hostnames map[string]string
	GPUModels map[string]string
}

// Annotate converts a store snapshot into its listed form. The report is
// marked offline once its age exceeds offlineAfter. When a hostname or
// GPU model matches a rename table the canonical name replaces it and the
// original is preserved under old_hostname/old_model.
func Annotate(snap store.Snapshot, offlineAfter time.Duration, maps Maps) types.ListedReport {
	item := types.ListedReport{
		Report:  snap.Report,
		Offline: snap.Age > offlineAfter,
	}

	if canonical, ok := maps.Hostnames[item.Hostname]; ok {
		item.OldHostname = item.Hostname
		item.Hostname = canonical
	}

	if len(item.GPUs) > 0 {
		// Copy before renaming so the stored slice stays untouched.
		gpus := make([]types.GPUInfo, len(item.GPUs))
		copy(gpus, item.GPUs)
		for i := range gpus {
			if canonical, ok := maps.GPUModels[gpus[i].Model]; ok {
				gpus[i].OldModel = gpus[i].Model
				gpus[i].Model = canonical
			}
		}
		item.GPUs = gpus
	}

	return item
}
