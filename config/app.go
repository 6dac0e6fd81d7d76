package config

type App struct {
	Env   string `json:"env" yaml:"env" env:"APP_ENV"`
	Debug bool   `json:"debug" yaml:"debug" env:"APP_DEBUG"`
	// HashSalt 生成配对码时使用的 hashids 盐值
	HashSalt string `json:"hash_salt" yaml:"hash_salt" env:"APP_HASH_SALT"`
}
