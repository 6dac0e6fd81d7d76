package config

import "time"

type Jwt struct {
	Secret        string        `json:"secret" yaml:"secret" env:"JWT_SECRET"`
	AccessExpire  time.Duration `json:"access_expire" yaml:"access_expire"`
	RefreshExpire time.Duration `json:"refresh_expire" yaml:"refresh_expire"`
}

func (j Jwt) AccessTTL() time.Duration {
	if j.AccessExpire <= 0 {
		return 7 * 24 * time.Hour
	}
	return j.AccessExpire
}

func (j Jwt) RefreshTTL() time.Duration {
	if j.RefreshExpire <= 0 {
		return 30 * 24 * time.Hour
	}
	return j.RefreshExpire
}
