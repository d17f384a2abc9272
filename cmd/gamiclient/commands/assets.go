package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gamiclient/internal/domain"
)

func assetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the campaign's assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resume(); err != nil {
				return err
			}
			env := appCtx.ListAssets(cmd.Context())
			if done, err := printJSON(env); done || err != nil {
				return err
			}
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSLUG\tTYPE\tSTATUS\tFILE")
			for _, a := range env.Content {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", a.ID, a.Slug, a.AssetType, a.Status, a.FileName)
			}
			return tw.Flush()
		},
	}
}

// asset-content <id>: write the asset to --out, or stdout when omitted.
func assetContentCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "asset-content <id>",
		Short: "Download one asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("asset id must be a number: %w", err)
			}
			if err := resume(); err != nil {
				return err
			}

			env := appCtx.FetchAsset(cmd.Context(), domain.AssetID(n))
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}
			data := env.Content
			if out == "" {
				_, err := os.Stdout.Write(data.Bytes)
				return err
			}
			if err := os.WriteFile(out, data.Bytes, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %s (%s) to %s\n",
				humanize.Bytes(uint64(len(data.Bytes))), data.MIMEType, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
