// Command studioctl is a terminal admin client for the art studio API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"art_studio/internal/client/session"
	"art_studio/internal/client/studioapi"
	"art_studio/internal/domain/models"

	"github.com/fatih/color"
)

const usage = `usage: studioctl [-api URL] [-session FILE] [-v] <command> [args]

commands:
  login -email E [-password P]     log in (password also read from STUDIO_PASSWORD)
  logout                           revoke and forget the stored token
  whoami                           show the claims of the stored token
  artworks [-category C] [-search S] [-limit N] [-all]
  services [-search S] [-limit N] [-all]
  move-artwork <index> up|down     swap an artwork with its neighbour
  move-service <index> up|down     swap a service with its neighbour
  contacts [-status S] [-search S] [-limit N]
  contact-status <id> new|read|archived
`

var (
	bold = color.New(color.Bold).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
	ok   = color.New(color.FgGreen).SprintFunc()
	warn = color.New(color.FgYellow).SprintFunc()
	bad  = color.New(color.FgRed).SprintFunc()
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("studioctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	apiURL := fs.String("api", envOr("STUDIO_API", "http://localhost:8080"), "API base URL")
	sessionFile := fs.String("session", defaultSessionFile(), "where the login token is kept")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	nav := session.NavigatorFunc(func(reason string) {
		if reason == session.ReasonLogout {
			return
		}
		fmt.Fprintln(stderr, warn("not logged in ("+reason+"): run `studioctl login -email ...`"))
	})

	sess, err := session.New(log, session.NewFileStore(*sessionFile), nav)
	if err != nil {
		fmt.Fprintln(stderr, bad(err.Error()))
		return 1
	}

	client, err := studioapi.New(log, *apiURL, sess)
	if err != nil {
		fmt.Fprintln(stderr, bad(err.Error()))
		return 1
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &cli{client: client, out: stdout}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "login":
		err = c.login(ctx, rest)
	case "logout":
		client.Logout(ctx)
		fmt.Fprintln(stdout, ok("logged out"))
	case "whoami":
		err = c.whoami(ctx)
	case "artworks":
		err = c.artworks(ctx, rest)
	case "services":
		err = c.services(ctx, rest)
	case "move-artwork":
		err = c.moveArtwork(ctx, rest)
	case "move-service":
		err = c.moveService(ctx, rest)
	case "contacts":
		err = c.contacts(ctx, rest)
	case "contact-status":
		err = c.contactStatus(ctx, rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	if err != nil {
		if !errors.Is(err, session.ErrNoCredentials) {
			fmt.Fprintln(stderr, bad(err.Error()))
		}
		return 1
	}
	return 0
}

type cli struct {
	client *studioapi.Client
	out    io.Writer
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", os.Getenv("STUDIO_EMAIL"), "admin email")
	password := fs.String("password", os.Getenv("STUDIO_PASSWORD"), "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login needs -email and -password (or STUDIO_EMAIL / STUDIO_PASSWORD)")
	}

	out, err := c.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s as %s, token valid until %s\n",
		ok("logged in"), bold(out.User.Email), out.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}

func (c *cli) whoami(ctx context.Context) error {
	claims, err := c.client.Verify(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s (%s), expires %s\n",
		bold(claims.Email), claims.Role, time.Unix(claims.ExpiresAt, 0).Local().Format(time.RFC1123))
	return nil
}

func (c *cli) artworkList(ctx context.Context, args []string) ([]models.Artwork, []string, error) {
	fs := flag.NewFlagSet("artworks", flag.ContinueOnError)
	var p studioapi.ArtworkParams
	fs.StringVar(&p.Category, "category", "", "category filter")
	fs.StringVar(&p.Search, "search", "", "text search")
	fs.IntVar(&p.Limit, "limit", 0, "max results")
	fs.BoolVar(&p.All, "all", false, "include inactive")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	list, err := c.client.Artworks(ctx, p)
	return list, fs.Args(), err
}

func (c *cli) artworks(ctx context.Context, args []string) error {
	list, _, err := c.artworkList(ctx, args)
	if err != nil {
		return err
	}

	for i, a := range list {
		line := fmt.Sprintf("%3d  %-4d %s  %s", i, a.Order, bold(a.Title), dim(a.Category))
		if a.Featured {
			line += " " + warn("*")
		}
		if !a.Active {
			line += " " + dim("(hidden)")
		}
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *cli) serviceList(ctx context.Context, args []string) ([]models.Service, []string, error) {
	fs := flag.NewFlagSet("services", flag.ContinueOnError)
	var p studioapi.ServiceParams
	fs.StringVar(&p.Search, "search", "", "text search")
	fs.IntVar(&p.Limit, "limit", 0, "max results")
	fs.BoolVar(&p.All, "all", false, "include inactive")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	list, err := c.client.Services(ctx, p)
	return list, fs.Args(), err
}

func (c *cli) services(ctx context.Context, args []string) error {
	list, _, err := c.serviceList(ctx, args)
	if err != nil {
		return err
	}

	for i, s := range list {
		fmt.Fprintf(c.out, "%3d  %-4d %s  %s\n", i, s.Order, bold(s.Title), dim(s.PriceStart+" "+s.Currency))
	}
	return nil
}

func parseMove(args []string) (int, studioapi.Direction, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected <index> up|down")
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad index %q", args[0])
	}

	switch args[1] {
	case "up":
		return index, studioapi.Up, nil
	case "down":
		return index, studioapi.Down, nil
	}
	return 0, 0, fmt.Errorf("bad direction %q", args[1])
}

// moveArtwork accepts the list filters before the positional arguments so
// the index refers to the same listing the user saw.
func (c *cli) moveArtwork(ctx context.Context, args []string) error {
	list, rest, err := c.artworkList(ctx, append([]string{"-all"}, args...))
	if err != nil {
		return err
	}

	index, dir, err := parseMove(rest)
	if err != nil {
		return err
	}

	if err := c.client.MoveArtwork(ctx, list, index, dir); err != nil {
		return err
	}
	fmt.Fprintln(c.out, ok("moved"))
	return nil
}

func (c *cli) moveService(ctx context.Context, args []string) error {
	list, rest, err := c.serviceList(ctx, append([]string{"-all"}, args...))
	if err != nil {
		return err
	}

	index, dir, err := parseMove(rest)
	if err != nil {
		return err
	}

	if err := c.client.MoveService(ctx, list, index, dir); err != nil {
		return err
	}
	fmt.Fprintln(c.out, ok("moved"))
	return nil
}

func (c *cli) contacts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	var (
		p      studioapi.ContactParams
		status string
	)
	fs.StringVar(&status, "status", "", "new, read or archived")
	fs.StringVar(&p.Search, "search", "", "text search")
	fs.IntVar(&p.Limit, "limit", 0, "max results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p.Status = models.ContactStatus(status)

	list, err := c.client.Contacts(ctx, p)
	if err != nil {
		return err
	}

	for _, r := range list {
		st := string(r.Status)
		if r.Status == models.ContactStatusNew {
			st = warn(st)
		}
		fmt.Fprintf(c.out, "%s  %-8s %s <%s>  %s  %s\n",
			dim(r.ID.String()), st, bold(r.Name), r.Email, r.Service, dim(r.CreatedAt.Local().Format(time.DateTime)))
	}
	return nil
}

func (c *cli) contactStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("expected <id> new|read|archived")
	}

	status := models.ContactStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("bad status %q", args[1])
	}

	r, err := c.client.SetContactStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s %s is now %s\n", ok("updated"), r.Name, r.Status)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".studioctl-session.json"
	}
	return filepath.Join(dir, "art_studio", "session.json")
}
