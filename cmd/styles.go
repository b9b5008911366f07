package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	staticmap "github.com/harrybrwn/go-staticmap"
)

func newStylesCmd(c *cli) *cobra.Command {
	var (
		ov            overlayFlags
		noAttribution bool
		noLogo        bool
		beforeLayer   string
		padding       []int
	)
	cmd := &cobra.Command{
		Use:   "styles OWNER STYLE WIDTH HEIGHT CENTER",
		Short: "Print a url for the styles static images api",
		Long: `Print a url for the styles static images api.

CENTER is "auto", lon,lat,zoom[,bearing[,pitch]], or [minlon,minlat,maxlon,maxlat].`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, center, err := parseFrame(args[2:])
			if err != nil {
				return err
			}
			overlays, err := ov.overlays()
			if err != nil {
				return err
			}
			opts := &staticmap.StylesOptions{
				Overlays:    overlays,
				Retina:      ov.retina,
				BeforeLayer: beforeLayer,
				Padding:     padding,
			}
			if noAttribution {
				opts.Attribution = staticmap.Bool(false)
			}
			if noLogo {
				opts.Logo = staticmap.Bool(false)
			}
			client, err := c.client()
			if err != nil {
				return err
			}
			u, err := client.StylesURL(args[0], args[1], width, height, center, opts)
			if err != nil {
				return err
			}
			c.log.Debug("built url", "api", "styles", "owner", args[0], "style", args[1], "length", len(u))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
	flags := cmd.Flags()
	ov.register(flags)
	flags.BoolVar(&noAttribution, "no-attribution", false, "hide the attribution")
	flags.BoolVar(&noLogo, "no-logo", false, "hide the mapbox logo")
	flags.StringVar(&beforeLayer, "before-layer", "", "draw overlays below this style layer")
	flags.IntSliceVar(&padding, "padding", nil, "padding around auto or bbox framing, 1 to 4 values")
	return cmd
}

// parseFrame reads the WIDTH HEIGHT CENTER arguments.
func parseFrame(args []string) (width, height int, center staticmap.Center, err error) {
	if width, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, nil, fmt.Errorf("bad width %q", args[0])
	}
	if height, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, nil, fmt.Errorf("bad height %q", args[1])
	}
	center, err = staticmap.ParseCenter(args[2])
	return width, height, center, err
}
