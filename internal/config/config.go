package config

import "time"

type Config struct {
	HTTP             HTTP
	PostgresEndpoint string        `env:"POSTGRES_ENDPOINT"`
	MongoEndpoint    string        `env:"MONGO_ENDPOINT" envDefault:"mongodb://localhost:27017"`
	MongoDatabase    string        `env:"MONGO_DATABASE" envDefault:"fintrack"`
	JWTSecret        string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL         time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
