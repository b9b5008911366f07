package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	staticmap "github.com/harrybrwn/go-staticmap"
)

func newClassicCmd(c *cli) *cobra.Command {
	var (
		ov     overlayFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "classic TILESET WIDTH HEIGHT CENTER",
		Short: "Print a url for the classic (v4) static images api",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, center, err := parseFrame(args[1:])
			if err != nil {
				return err
			}
			overlays, err := ov.overlays()
			if err != nil {
				return err
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			u, err := client.ClassicURL(args[0], width, height, center, &staticmap.ClassicOptions{
				Overlays: overlays,
				Retina:   ov.retina,
				Format:   format,
			})
			if err != nil {
				return err
			}
			c.log.Debug("built url", "api", "classic", "tileset", args[0], "length", len(u))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
	ov.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", staticmap.DefaultFormat, "image format (png, png32, png64, png128, png256, jpg, jpg70, jpg80, jpg90)")
	return cmd
}
