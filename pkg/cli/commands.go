package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appium-go/pkg/appium"
	"github.com/devicelab-dev/appium-go/pkg/config"
	"github.com/devicelab-dev/appium-go/pkg/pagesource"
)

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "Check whether the Appium server is ready",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		transport, err := appium.NewHTTPTransport(cfg.ServerURL, nil, nil)
		if err != nil {
			return err
		}
		ready, message, err := transport.Status(c.Context)
		if err != nil {
			return err
		}
		if !ready {
			return fmt.Errorf("server at %s is not ready: %s", cfg.ServerURL, message)
		}
		outputColor(c, color.FgGreen).Fprint(c.App.Writer, "ready")
		fmt.Fprintf(c.App.Writer, ": %s\n", message)
		return nil
	},
}

var findCommand = &cli.Command{
	Name:  "find",
	Usage: "Find elements and print their ids",
	Description: `Find one element (or all with --all) and print the element ids.
With --wait the lookup is retried until the element appears.

Examples:
  appium-go find --using id --value com.example:id/login
  appium-go find --using "-ios predicate string" --value "label == 'Go'" --wait
  appium-go find --using "class name" --value android.widget.TextView --all`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "using",
			Usage: "Location strategy (id, xpath, accessibility id, -android uiautomator, ...)",
			Value: "accessibility id",
		},
		&cli.StringFlag{
			Name:     "value",
			Usage:    "Query for the strategy",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Find all matching elements",
		},
		&cli.BoolFlag{
			Name:  "wait",
			Usage: "Poll until the element appears",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Wait timeout (default from config)",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Usage: "Wait poll interval (default from config)",
		},
	},
	Action: runFind,
}

var sourceCommand = &cli.Command{
	Name:  "source",
	Usage: "Print the page source of the current screen",
	Description: `Print the raw XML page source, or the parsed elements with a suggested
locator for each one.

Examples:
  appium-go source
  appium-go source --format csv --clickable
  appium-go source --format json --text "^Sign (in|up)$"`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: xml, json or csv",
			Value: "xml",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "Only elements whose text matches (substring or regex)",
		},
		&cli.StringFlag{
			Name:  "id",
			Usage: "Only elements whose resource-id or name contains this",
		},
		&cli.StringFlag{
			Name:  "xpath",
			Usage: "Only elements selected by this path, e.g. //android.widget.Button",
		},
		&cli.BoolFlag{
			Name:  "clickable",
			Usage: "Only clickable elements",
		},
	},
	Action: runSource,
}

var screenshotCommand = &cli.Command{
	Name:      "screenshot",
	Usage:     "Save a PNG screenshot",
	ArgsUsage: "<file.png>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("screenshot needs exactly one output file")
		}
		return withSession(c, func(client *appium.Client, _ *config.Config) error {
			png, err := client.Screenshot(c.Context)
			if err != nil {
				return err
			}
			return os.WriteFile(c.Args().First(), png, 0o644)
		})
	},
}

func runFind(c *cli.Context) error {
	by := appium.ParseBy(c.String("using"), c.String("value"))

	return withSession(c, func(client *appium.Client, cfg *config.Config) error {
		if c.IsSet("timeout") {
			cfg.Wait.Timeout = c.Duration("timeout")
		}
		if c.IsSet("interval") {
			cfg.Wait.Interval = c.Duration("interval")
		}

		var (
			elements []*appium.Element
			err      error
		)
		switch {
		case c.Bool("wait") && c.Bool("all"):
			elements, err = cfg.NewWait(client.Wait()).ForElements(c.Context, by)
		case c.Bool("wait"):
			var el *appium.Element
			el, err = cfg.NewWait(client.Wait()).ForElement(c.Context, by)
			elements = []*appium.Element{el}
		case c.Bool("all"):
			elements, err = client.FindAll(c.Context, by)
		default:
			var el *appium.Element
			el, err = client.Find(c.Context, by)
			elements = []*appium.Element{el}
		}
		if err != nil {
			return fmt.Errorf("find %s: %w", by, err)
		}

		for _, el := range elements {
			fmt.Fprintln(c.App.Writer, el.ID())
		}
		return nil
	})
}

func runSource(c *cli.Context) error {
	format := c.String("format")
	switch format {
	case "xml", "json", "csv":
	default:
		return fmt.Errorf("unknown format %q (want xml, json or csv)", format)
	}

	return withSession(c, func(client *appium.Client, _ *config.Config) error {
		raw, err := client.Source(c.Context)
		if err != nil {
			return err
		}
		if format == "xml" {
			fmt.Fprintln(c.App.Writer, raw)
			return nil
		}

		src, err := pagesource.Parse(raw)
		if err != nil {
			return err
		}
		nodes := src.Nodes
		if path := c.String("xpath"); path != "" {
			if nodes, err = src.Select(path); err != nil {
				return err
			}
		}
		nodes = src.Filter(nodes, pagesource.Query{
			Text:      c.String("text"),
			ID:        c.String("id"),
			Clickable: c.Bool("clickable"),
		})
		if format == "json" {
			return src.WriteJSON(c.App.Writer, nodes)
		}
		return src.WriteCSV(c.App.Writer, nodes)
	})
}
