package internal

import "time"

// Config holds the server's environment-driven settings. Everything has a
// lab-friendly default; PORT falls back to the conventional gRPC 50051.
type Config struct {
	Port                 int           `env:"PORT,default=50051"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,default=./data/badger"`
	UploadDir            string        `env:"UPLOAD_DIR,default=./data/uploads"`
	HistoryCapacity      int           `env:"HISTORY_CAPACITY,default=100"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	MaxMessageSize       int           `env:"MAX_MESSAGE_SIZE_BYTES,default=10485760"`
	KeepaliveTime        time.Duration `env:"KEEPALIVE_TIME,default=30s"`
	KeepaliveTimeout     time.Duration `env:"KEEPALIVE_TIMEOUT,default=10s"`
	KeepaliveMinInterval time.Duration `env:"KEEPALIVE_MIN_INTERVAL,default=10s"`
}
