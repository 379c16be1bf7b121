package entity

// DeletionPolicy declares what a repository's delete operation actually does.
// Every repository states its policy explicitly instead of leaving callers to
// infer it from behavior.
type DeletionPolicy string

const (
	// HardDelete removes the row.
	HardDelete DeletionPolicy = "HARD_DELETE"
	// SoftDeleteViaFlag sets active=false and keeps the row.
	SoftDeleteViaFlag DeletionPolicy = "SOFT_DELETE_FLAG"
	// SoftDeleteViaStatus sets the status column to its canceled value.
	SoftDeleteViaStatus DeletionPolicy = "SOFT_DELETE_STATUS"
	// NoDelete means the resource exposes no delete operation.
	NoDelete DeletionPolicy = "NO_DELETE"
)
