package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"assetdesk/models"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAssetsCmd(r *runner) *cobra.Command {
	var filter models.AssetFilter
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List assets",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			assets, err := app.Assets.ListAssets(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), assets)
		}),
	}
	cmd.Flags().StringVar(&filter.Category, "category", "", "Only assets in this category")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Only assets with this status")
	return cmd
}

func newCategoriesCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List asset categories",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			categories, err := app.Assets.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), categories)
		}),
	}
}

func newSuggestCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [query]",
		Short: "Suggest asset names",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			for _, s := range app.Assets.Suggestions(cmd.Context(), query) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		}),
	}
}

func newRequestAssetCmd(r *runner) *cobra.Command {
	var (
		req      models.AssetRequest
		priority string
	)
	cmd := &cobra.Command{
		Use:   "request-asset",
		Short: "Request a new asset",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			req.Priority = models.Priority(priority)
			res, err := app.Assets.SubmitAssetRequest(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Message, res.RequestID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&req.Category, "category", "", "Asset category")
	cmd.Flags().StringVar(&req.AssetType, "asset-type", "", "Asset type (alias of --category)")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "Why the asset is needed")
	cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "low, medium or high")
	cmd.Flags().StringToStringVar(&req.Specifications, "spec", nil, "Specification as key=value, repeatable")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Additional notes")
	return cmd
}

func newRequestServiceCmd(r *runner) *cobra.Command {
	var (
		req       models.ServiceRequest
		issueType string
		priority  string
		attach    []string
	)
	cmd := &cobra.Command{
		Use:   "request-service",
		Short: "Report a problem with an asset",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			req.IssueType = models.IssueType(issueType)
			req.Priority = models.Priority(priority)
			attachments, err := readAttachments(attach)
			if err != nil {
				return err
			}
			req.Attachments = attachments

			res, err := app.Assets.SubmitServiceRequest(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Message, res.RequestID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&req.AssetID, "asset-id", "", "Asset id")
	cmd.Flags().StringVar(&req.AssetNo, "asset-no", "", "Asset number (instead of --asset-id)")
	cmd.Flags().StringVar(&issueType, "issue-type", string(models.IssueMalfunction), "malfunction, repair or return")
	cmd.Flags().StringVar(&req.Issue, "issue", "", "Short issue summary")
	cmd.Flags().StringVar(&req.Description, "description", "", "Issue description")
	cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "low, medium or high")
	cmd.Flags().StringSliceVar(&attach, "attach", nil, "File to attach, repeatable")
	return cmd
}

func readAttachments(paths []string) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read attachment %s", p)
		}
		attachments = append(attachments, models.Attachment{
			Name:        filepath.Base(p),
			ContentType: http.DetectContentType(data),
			Data:        data,
		})
	}
	return attachments, nil
}

func newServiceRequestsCmd(r *runner) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "service-requests",
		Short: "List service requests",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			records, err := app.Assets.ListServiceRequests(cmd.Context(), strings.TrimSpace(status))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		}),
	}
	cmd.Flags().StringVar(&status, "status", "", "Only requests with this status")
	return cmd
}

func newDashboardCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the signed in user",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			snapshot, err := app.Dashboard.FetchDashboard(cmd.Context())
			if err != nil {
				return err
			}
			if snapshot.Admin != nil {
				return printJSON(cmd.OutOrStdout(), snapshot.Admin)
			}
			return printJSON(cmd.OutOrStdout(), snapshot.Employee)
		}),
	}
}
