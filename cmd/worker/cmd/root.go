package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svnhec/qoda-sub003/cmd/setup"
	"github.com/svnhec/qoda-sub003/internal/common/graceful"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/deliveries/job"
	"github.com/svnhec/qoda-sub003/internal/services"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
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
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date (YYYY-MM-DD)")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job name and version",
	Long:  ``,
	Run:   list,
}

func list(ccmd *cobra.Command, args []string) {
	// listing only needs the route names, not wired services
	j := job.New(config.Config{}, &services.Services{})
	for version, l := range j.Routes {
		for name := range l {
			fmt.Printf("version=%s, name=%s\n", version, name)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -d={job-date}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
)

func runJob(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	j := job.New(s.Config, s.Service)
	j.Start(ctx, job.Flags{
		JobName: name,
		Version: version,
		Date:    date,
	})
	log.Info(ctx, "job server stopped!")
}
