package domain

// ApiKeysConfig is the user-supplied credential override. Persisted in the
// secure backing store; absent (or disabled via the separate enabled flag)
// means the built-in anonymous demo credentials are used instead.
type ApiKeysConfig struct {
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
	Region    Region `json:"region"`
}
