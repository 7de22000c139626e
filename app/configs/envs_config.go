package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	Port           string
	AppURL         string
	AppEnv         string
	UploadToPublic bool
	AssetRoot      string
	S3Bucket       string
	S3Region       string
	AppAuthKey     string
	AppEncKey      string
	MetricsPort    string
}

// LoadEnv reads .env once at process start. The result is passed around
// explicitly; nothing reads os.Getenv at request time.
func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		Port:        os.Getenv("APP_PORT"),
		AppURL:      os.Getenv("APP_URL"),
		AppEnv:      os.Getenv("APP_ENV"),
		AssetRoot:   os.Getenv("ASSET_ROOT"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		AppAuthKey:  os.Getenv("APP_AUTH_KEY"),
		AppEncKey:   os.Getenv("APP_ENC_KEY"),
		MetricsPort: os.Getenv("METRICS_PORT"),
	}

	if env.AssetRoot == "" {
		env.AssetRoot = "public"
	}
	if env.MetricsPort == "" {
		env.MetricsPort = "9090"
	}

	// Local deployments serve straight out of the public dir; anything else
	// defaults to the storage disk unless UPLOAD_TO_PUBLIC says otherwise.
	switch os.Getenv("UPLOAD_TO_PUBLIC") {
	case "true", "1":
		env.UploadToPublic = true
	case "false", "0":
		env.UploadToPublic = false
	default:
		env.UploadToPublic = env.AppEnv == "local" || env.AppEnv == ""
	}

	return env
}
