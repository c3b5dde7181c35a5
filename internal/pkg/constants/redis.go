package constants

// Redis key formats
const (
	KeyAdPackage = "ad_package:%s" // Format: ad_package:{package_id}
)
