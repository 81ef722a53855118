/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tieubaoca/docsense-be/config"
	"github.com/tieubaoca/docsense-be/database"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsense-be",
	Short: "Document ingestion and semantic analysis backend",
	Long: `docsense-be ingests documents in image, PDF, DOCX and plain text
formats, extracts their text, runs sentiment, entity and topic analysis
over it and persists the results.

Run without a subcommand to rebuild the keyword search index.`,
	Run: func(cmd *cobra.Command, args []string) {
		databaseURL, _ := cmd.Flags().GetString("database-url")
		dbApiKey := os.Getenv("WEAVIATE_APIKEY")

		searchStore, err := database.NewSearchStore(config.SearchStoreConfig{
			Host:   databaseURL,
			APIKey: dbApiKey,
		})
		if err != nil {
			fmt.Println("Failed to create search store: ", err)
			os.Exit(1)
		}
		if err := searchStore.ReInit(); err != nil {
			fmt.Println("Failed to reinitialize search index: ", err)
			os.Exit(1)
		}
		fmt.Println("Search index reinitialized")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.docsense-be.yaml)")

	rootCmd.Flags().StringP("database-url", "d", "http://localhost:8080", "URL for the Weaviate database")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".docsense-be" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".docsense-be")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
