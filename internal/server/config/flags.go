package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   ops HTTP bind address (e.g., ":8081")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l int      maximum upload size, bytes
//	-x int      signed URL expiry, seconds
//
// Per-level credentials are deliberately not accepted on the command line;
// they come from the JSON file or the environment.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-g", "-e", "-l", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "m", config.EndpointAddrHTTP, "address and port to run ops HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.Int64Var(&config.MaxUploadSize, "l", config.MaxUploadSize, "maximum upload size (in bytes)")

	signedURLExpiry := fs.Int("x", int(config.SignedURLExpiry.Seconds()), "signed url expiry (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SignedURLExpiry = time.Duration(*signedURLExpiry) * time.Second
}
