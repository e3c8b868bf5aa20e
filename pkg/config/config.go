package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Mongo struct {
	URI        string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"DATABASE" default:"transactions"`
	Collection string        `envconfig:"COLLECTION" default:"transaction"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Store selects the storage backend.
type Store struct {
	Backend string `envconfig:"BACKEND" default:"mongo"`
}

type Jwt struct {
	Secret string `envconfig:"SECRET"`
}

// Auth is optional: requests are only authenticated when a JWT secret is set.
type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Pagination struct {
	DefaultSize int `envconfig:"DEFAULT_SIZE" default:"20"`
	MaxSize     int `envconfig:"MAX_SIZE" default:"100"`
}

// Transaction holds the record rules that vary per deployment.
type Transaction struct {
	Types              []string `envconfig:"TYPES" default:"DEPOSIT,WITHDRAWAL,TRANSFER,PAYMENT"`
	DefaultDescription string   `envconfig:"DEFAULT_DESCRIPTION" default:"No description"`
	DefaultStatus      string   `envconfig:"DEFAULT_STATUS" default:"COMPLETED"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[txrecords]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env         string       `envconfig:"APP_ENV" default:"development"`
	Server      *Server      `envconfig:"SERVER"`
	Log         *Log         `envconfig:"LOG"`
	Store       *Store       `envconfig:"STORE"`
	DB          *DB          `envconfig:"DATABASE"`
	Mongo       *Mongo       `envconfig:"MONGO"`
	Auth        *Auth        `envconfig:"AUTH"`
	RateLimit   *RateLimit   `envconfig:"RATE_LIMIT"`
	Pagination  *Pagination  `envconfig:"PAGINATION"`
	Transaction *Transaction `envconfig:"TRANSACTION"`
}
