/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/docsense-be/config"
	"github.com/tieubaoca/docsense-be/database"
	"github.com/tieubaoca/docsense-be/handler"
	"github.com/tieubaoca/docsense-be/repository"
	"github.com/tieubaoca/docsense-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document analysis server",
	Long:  `Starts a server that ingests documents and runs semantic analysis over them`,
	Run: func(cmd *cobra.Command, args []string) {

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		mongoClient := database.DefaultMongoClient
		if err := mongoClient.Ping(context.Background(), nil); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		//init repo
		documentRepo := repository.NewDocumentRepo(mongoDb)

		//init services
		extractService := service.NewExtractService(cfg.OCRLanguage)

		var analysisProvider service.AnalysisProvider
		if cfg.AnalysisEndpoint != "" {
			analysisProvider = service.NewRemoteAnalysisService(cfg.AnalysisEndpoint)
			log.Printf("Using remote analysis service at %s", cfg.AnalysisEndpoint)
		} else {
			analysisProvider = service.NewLocalAnalysisService(cfg.EngineTimeout())
		}

		healthService := service.NewHealthService(documentRepo, analysisProvider)
		pipelineService := service.NewPipelineService(extractService, analysisProvider, documentRepo, healthService)
		if cfg.ArchiveUploads {
			pipelineService = pipelineService.WithUploadArchive(cfg.UploadDir)
		}

		var searchStore *database.SearchStore
		if cfg.SearchStoreConfig.Host != "" {
			searchStore, err = database.NewSearchStore(cfg.SearchStoreConfig)
			if err != nil {
				log.Fatalf("Failed to connect to Weaviate database: %v", err)
			}
			pipelineService = pipelineService.WithIndexer(searchStore)
		}

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		analyzeHandler := handler.NewAnalyzeHandler(pipelineService)
		documentHandler := handler.NewDocumentHandler(documentRepo, searchStoreRemover(searchStore))
		searchHandler := handler.NewSearchHandler(searchStore)
		healthHandler := handler.NewHealthHandler(healthService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/health", healthHandler.HandleHealth)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/documents/analyze", analyzeHandler.HandleAnalyze)
			apiV1.GET("/documents", documentHandler.HandleList)
			apiV1.GET("/documents/search", searchHandler.HandleSearch)
			apiV1.GET("/documents/:id", documentHandler.HandleGet)
			apiV1.DELETE("/documents/:id", documentHandler.HandleDelete)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// searchStoreRemover keeps the nil check out of the handler wiring. A nil
// *SearchStore inside a non-nil interface would dodge the handler's guard.
func searchStoreRemover(store *database.SearchStore) handler.DocumentRemover {
	if store == nil {
		return nil
	}
	return store
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
