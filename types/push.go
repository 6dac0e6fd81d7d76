package types

type PushSubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

type PushSubscribeResponse struct {
	ID      uint64 `json:"id"`
	Message string `json:"message"`
}

type PublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}
