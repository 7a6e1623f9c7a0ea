package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt                 *Jwt          `envconfig:"JWT"`
	PasswordResetExpiry time.Duration `envconfig:"PASSWORD_RESET_EXPIRY" default:"1h"`
	PasswordResetURL    string        `envconfig:"PASSWORD_RESET_URL" default:"http://localhost:5173/reset-password"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"causehive:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type EventBus struct {
	Driver       string   `envconfig:"DRIVER" default:"memory"`
	RedisURL     string   `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaPrefix  string   `envconfig:"KAFKA_TOPIC_PREFIX" default:"causehive"`
	KafkaGroupID string   `envconfig:"KAFKA_GROUP_ID" default:"causehive-handlers"`

	KafkaSASLUsername string `envconfig:"KAFKA_SASL_USERNAME"`
	KafkaSASLPassword string `envconfig:"KAFKA_SASL_PASSWORD"`
	KafkaTLS          bool   `envconfig:"KAFKA_TLS" default:"false"`

	DLQRetryInterval time.Duration `envconfig:"DLQ_RETRY_INTERVAL" default:"5m"`
	DLQBatchSize     int           `envconfig:"DLQ_BATCH_SIZE" default:"10"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Paystack struct {
	SecretKey   string        `envconfig:"SECRET_KEY"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.paystack.co"`
	CallbackURL string        `envconfig:"CALLBACK_URL" default:"http://localhost:5173/payment/callback"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	MaxRetries  int           `envconfig:"MAX_RETRIES" default:"3"`
}

//revive:disable
type Stripe struct {
	ApiKey        string `envconfig:"API_KEY"`
	SigningSecret string `envconfig:"SIGNING_SECRET"`
	SuccessPath   string `envconfig:"SUCCESS_PATH" default:"http://localhost:5173/payment/success"`
	CancelPath    string `envconfig:"CANCEL_PATH" default:"http://localhost:5173/payment/cancel"`
}

//revive:enable
type PaymentProviders struct {
	Driver   string    `envconfig:"DRIVER" default:"paystack"`
	Paystack *Paystack `envconfig:"PAYSTACK"`
	Stripe   *Stripe   `envconfig:"STRIPE"`
}

type Fee struct {
	WithdrawalFeePercentage float64 `envconfig:"WITHDRAWAL_FEE_PERCENTAGE" default:"0.025"`
}

type Donation struct {
	Currency string `envconfig:"CURRENCY" default:"GHS"`
}

type Withdrawal struct {
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"5m"`
}

type Cache struct {
	Driver             string        `envconfig:"DRIVER" default:"memory"`
	BankListTTL        time.Duration `envconfig:"BANK_LIST_TTL" default:"24h"`
	PlatformMetricsTTL time.Duration `envconfig:"PLATFORM_METRICS_TTL" default:"5m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[causehive]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env              string            `envconfig:"APP_ENV" default:"development"`
	Server           *Server           `envconfig:"SERVER"`
	Log              *Log              `envconfig:"LOG"`
	DB               *DB               `envconfig:"DATABASE"`
	Auth             *Auth             `envconfig:"AUTH"`
	Redis            *Redis            `envconfig:"REDIS"`
	EventBus         *EventBus         `envconfig:"EVENT_BUS"`
	RateLimit        *RateLimit        `envconfig:"RATE_LIMIT"`
	PaymentProviders *PaymentProviders `envconfig:"PAYMENT_PROVIDER"`
	Fee              *Fee              `envconfig:"FEE"`
	Donation         *Donation         `envconfig:"DONATION"`
	Withdrawal       *Withdrawal       `envconfig:"WITHDRAWAL"`
	Cache            *Cache            `envconfig:"CACHE"`
}
