package database

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultMongoClient is the process-wide document store client,
// configured from MONGODB_URI. Construction does not dial; connection
// problems surface on first use, so CLI commands that never touch the
// store still run with an unreachable database.
var DefaultMongoClient *mongo.Client

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}
	client, err := mongo.Connect(options.Client().
		ApplyURI(os.Getenv("MONGODB_URI")).
		SetBSONOptions(
			&options.BSONOptions{
				// Record ids are plain strings end to end.
				ObjectIDAsHexString: true,
			},
		))
	if err != nil {
		log.Println("Failed to create document store client:", err)
		return
	}
	DefaultMongoClient = client
}
