package models

// MerchantInfo is a well known merchant and the default category its
// purchases belong to.
type MerchantInfo struct {
	Name     string
	Category string
	Keywords []string
}
