package cli

import (
	"context"
	"fmt"
	"io"

	"assetdesk/apperrors"
	"assetdesk/providers"
	"assetdesk/providers/loggerProvider"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type runFunc func(cmd *cobra.Command, app *App, args []string) error

type runner struct {
	cfg      providers.ConfigProvider
	logLevel string
}

// run opens the app, restores the session, then hands over to fn.
func (r *runner) run(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
			cmd.SetContext(ctx)
		}

		level := r.cfg.GetLogLevel()
		if r.logLevel != "" {
			level = r.logLevel
		}
		logger := loggerProvider.NewLogProvider(level, r.cfg.GetLogFile())
		logger.InitLogger()

		app, err := NewApp(ctx, r.cfg, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Session.Init(ctx); err != nil {
			return err
		}
		return fn(cmd, app, args)
	}
}

func NewRootCmd(cfg providers.ConfigProvider) *cobra.Command {
	r := &runner{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "assetctl",
		Short:         "Request and service company assets",
		Long:          `assetctl signs in to the asset desk API, submits asset and service requests and shows dashboards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&r.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(
		newLoginCmd(r),
		newRegisterCmd(r),
		newLogoutCmd(r),
		newWhoamiCmd(r),
		newRefreshCmd(r),
		newAssetsCmd(r),
		newCategoriesCmd(r),
		newSuggestCmd(r),
		newRequestAssetCmd(r),
		newRequestServiceCmd(r),
		newServiceRequestsCmd(r),
		newDashboardCmd(r),
	)
	return rootCmd
}

// ErrorMessage is what a failed command prints.
func ErrorMessage(err error) string {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) || errors.Is(err, apperrors.ErrNetwork) {
		return apperrors.Message(err)
	}
	return err.Error()
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
