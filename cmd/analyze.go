/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/docsense-be/service"
	"github.com/tieubaoca/docsense-be/types"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single document from disk",
	Long: `Runs format detection, text extraction and semantic analysis over one
file and prints the result as JSON. Nothing is persisted; use the server
for that.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		ocrLanguage, _ := cmd.Flags().GetString("ocr-language")
		withText, _ := cmd.Flags().GetBool("text")
		if filePath == "" {
			log.Fatal("A file path is required, use --file")
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}
		blob := types.DocumentBlob{
			Data:     data,
			MimeType: mime.TypeByExtension(filepath.Ext(filePath)),
			FileName: filepath.Base(filePath),
		}

		extractService := service.NewExtractService(ocrLanguage)
		analysisService := service.NewLocalAnalysisService(10 * time.Second)

		ctx := context.Background()
		kind := service.DetectFormat(blob.MimeType)
		if kind == types.FormatUnsupported {
			log.Fatalf("Unsupported file type: %q", blob.MimeType)
		}
		extracted, err := extractService.Extract(ctx, kind, blob)
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}
		analysis, err := analysisService.Analyze(ctx, extracted.Content)
		if err != nil {
			log.Fatalf("Failed to analyze text: %v", err)
		}

		output := map[string]interface{}{
			"fileType": kind,
			"analysis": analysis,
		}
		if withText {
			output["content"] = extracted.Content
		}
		encoded, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		fmt.Println(string(encoded))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "Path to the file to analyze")
	analyzeCmd.Flags().String("ocr-language", "eng", "Tesseract language for image inputs")
	analyzeCmd.Flags().Bool("text", false, "Include the extracted text in the output")
}
