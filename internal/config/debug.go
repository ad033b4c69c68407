package config

import "os"

func IsDebug() bool {
	return os.Getenv("HAWSA_DEBUG") == "1"
}
