package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	MinIO  MinIOConfig  `mapstructure:"minio"`
	Mail   MailConfig   `mapstructure:"mail"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Site   SiteConfig   `mapstructure:"site"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	// PublicBaseURL 对外访问地址，为空时按 endpoint 拼接
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// MailConfig 邮件发送服务配置
type MailConfig struct {
	URL        string `mapstructure:"url"`
	ApiKey     string `mapstructure:"api_key"`
	Sender     string `mapstructure:"sender"`
	SenderName string `mapstructure:"sender_name"`
	AdminEmail string `mapstructure:"admin_email"`
}

// AuthConfig 签发 Token 相关配置
type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwt_secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// SiteConfig 站点配置
type SiteConfig struct {
	FrontendURL string `mapstructure:"frontend_url"`
}
