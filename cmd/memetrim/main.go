// memetrim is the terminal client for a mememaker server: paste a video
// URL, trim a range on the timeline, submit the clip job, and get a
// download link back.
package main

import (
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mememaker-site/config"
)

var (
	serverURL string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "memetrim",
	Short: "trim and clip a video from your terminal",
	Long: `memetrim talks to a mememaker server: paste a public video URL,
drag the trim handles (mouse or arrow keys), and submit the range as a
clip job. The produced MP4 comes back as a download link.`,
	Version: appVersion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newModel(newAPIClient(serverURL)),
			tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s",
		config.GetBaseURL(), "mememaker server base URL")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"memetrim v%s (%s, %s/%s)\n",
		appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH))
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
