package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/pronounce/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pronounce [query]",
		Short: "Vocabulary.com pronunciation downloader",
		Long: `pronounce downloads pronunciation audio clips from vocabulary.com.

It fetches the dictionary entry page for a word or phrase, extracts the
audio token embedded in the page markup and saves the referenced MP3 clip
into a media directory (by default the local Anki collection).

Examples:
  pronounce Capricorn
  pronounce "machine learning" -o ./audio_files
  pronounce pronunciation --output-dir ~/Downloads`,
		Args:    cobra.ExactArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.pronounce.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", flags.OutputDir, "Output directory for downloaded files")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output-dir"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".pronounce" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pronounce")
	}

	// Environment variables
	viper.SetEnvPrefix("PRONOUNCE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// DefaultOutputDir returns the Anki collection.media directory for the
// current platform. Clips dropped there show up in Anki without an import
// step, which is the main use of this tool.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Anki2", "User 1", "collection.media")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Anki2", "User 1", "collection.media")
	default:
		return filepath.Join(home, ".local", "share", "Anki2", "User 1", "collection.media")
	}
}
