package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aplamondon/go-restomenu/app/cmd"
	"github.com/aplamondon/go-restomenu/app/configs"
	"github.com/aplamondon/go-restomenu/app/metrics"
	"github.com/aplamondon/go-restomenu/app/routes"
	"github.com/aplamondon/go-restomenu/app/storage"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatalf("Session keys failed: %v", err)
	}

	disk, err := buildDisk(env)
	if err != nil {
		log.Fatalf("Storage disk failed: %v", err)
	}

	metrics.StartMetricsServer(env.MetricsPort)

	router := routes.NewRouter(env, db, keys, disk)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}

// buildDisk picks the single upload target for this deployment: the public
// asset directory, or the S3 storage disk.
func buildDisk(env configs.ENV) (storage.Disk, error) {
	if env.UploadToPublic {
		return storage.NewLocalDisk(env.AssetRoot, env.AppURL), nil
	}
	return storage.NewS3Disk(context.Background(), env.S3Bucket, env.S3Region)
}
