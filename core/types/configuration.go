// Package types - Caller-held configuration
package types

// Configuration is the mutable selection owned by the caller.
// Values outside tier or storage bounds are kept as entered; the engine
// only reports them through warnings.
type Configuration struct {
	// SelectedTier is a ComputeTier name
	SelectedTier string `json:"selected_tier" yaml:"tier"`

	// StorageType is a StorageClass key
	StorageType StorageKey `json:"storage_type" yaml:"storage"`

	// DiskSizeGB is the provisioned disk size
	DiskSizeGB float64 `json:"disk_size_gb" yaml:"disk_size_gb"`

	// Iops is the provisioned IOPS
	Iops float64 `json:"iops" yaml:"iops"`
}

// DefaultConfiguration returns the initial configuration: Micro, gp3, 8 GB, 3000 IOPS
func DefaultConfiguration() Configuration {
	return Configuration{
		SelectedTier: "Micro",
		StorageType:  StorageGP3,
		DiskSizeGB:   8,
		Iops:         3000,
	}
}
