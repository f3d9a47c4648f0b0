package types

// Report represents a telemetry document pushed by an agent. Apart from
// the id, every section is agent-controlled and optional.
type Report struct {
	ID        string      `json:"id" validate:"required"`
	Hostname  string      `json:"hostname,omitempty"`
	OS        *OSInfo     `json:"os,omitempty"`
	CPUs      []CPUInfo   `json:"cpus,omitempty"`
	Memory    *MemoryInfo `json:"memory,omitempty"`
	Disks     []DiskInfo  `json:"disks,omitempty"`
	GPUs      []GPUInfo   `json:"gpus,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
}

// OSInfo represents operating system information
type OSInfo struct {
	Name         string `json:"name,omitempty"`
	Version      string `json:"version,omitempty"`
	Architecture string `json:"architecture,omitempty"`
	SMBIOS       string `json:"smbios,omitempty"`
}

// CPUInfo represents a single CPU package
type CPUInfo struct {
	ID           int     `json:"id"`
	Model        string  `json:"model,omitempty"`
	Cores        int     `json:"cores"`
	UsagePercent float64 `json:"usage_percent"`
}

// MemoryInfo represents system memory usage
type MemoryInfo struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskInfo represents a single mounted disk
type DiskInfo struct {
	Mount        string  `json:"mount,omitempty"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// GPUInfo represents a single GPU unit. OldModel is only populated by the
// presentation layer when a cosmetic model rename applies.
type GPUInfo struct {
	ID                 int     `json:"id"`
	Model              string  `json:"model,omitempty"`
	OldModel           string  `json:"old_model,omitempty"`
	UsagePercent       float64 `json:"usage_percent"`
	MemoryTotalGB      float64 `json:"memory_total_gb"`
	MemoryUsedGB       float64 `json:"memory_used_gb"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
}

// ListedReport is the presentation form of a stored report: the report
// itself plus the offline flag and any cosmetic hostname rename.
type ListedReport struct {
	Report
	OldHostname string `json:"old_hostname,omitempty"`
	Offline     bool   `json:"offline"`
}
