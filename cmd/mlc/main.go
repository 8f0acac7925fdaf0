package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mlc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mlc",
	Short: "ml language compiler front end",
	Long:  `mlc tokenizes ml source files and reports diagnostics`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor решает по флагу --color, раскрашивать ли вывод в f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		flag = "auto"
	}
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return !color.NoColor && isTerminal(f)
	}
}
