package config

import "time"

// Push Web Push (VAPID) 配置
type Push struct {
	VAPIDPublicKey  string        `json:"vapid_public_key" yaml:"vapid_public_key" env:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string        `json:"vapid_private_key" yaml:"vapid_private_key" env:"VAPID_PRIVATE_KEY"`
	Subscriber      string        `json:"subscriber" yaml:"subscriber" env:"VAPID_CLAIM_EMAIL"`
	TTL             int           `json:"ttl" yaml:"ttl"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
	RetryAttempts   uint          `json:"retry_attempts" yaml:"retry_attempts"`
	RetryDelay      time.Duration `json:"retry_delay" yaml:"retry_delay"`
	Concurrency     int           `json:"concurrency" yaml:"concurrency"`
	Icon            string        `json:"icon" yaml:"icon"`
}

// Configured 是否已配置 VAPID 密钥
func (p Push) Configured() bool {
	return p.VAPIDPublicKey != "" && p.VAPIDPrivateKey != ""
}

func ProvidePushConfig(cfg *Config) *Push {
	return &cfg.Push
}
