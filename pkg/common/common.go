package common

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a new snowflake id.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a new snowflake id in base36 string form.
func UUID() string {
	return snowflakeNode.Generate().Base36()
}

func Sha256Hash(src string) string {
	h := sha256.New()
	h.Write([]byte(src))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func Sha256HashWithSalt(src string, salt string) string {
	return Sha256Hash(src + salt)
}

// GetSecretSalt reads the process-level secret salt, with a fixed fallback
// for development setups.
func GetSecretSalt() string {
	if v, ok := os.LookupEnv("FOODON_SECRET_SALT"); ok && v != "" {
		return v
	}
	return "foodon-default-salt"
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
