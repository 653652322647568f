package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	internalcli "github.com/cactat/cactat/internal/cli"
	"github.com/cactat/cactat/internal/config"
	"github.com/cactat/cactat/internal/database"
	"github.com/cactat/cactat/internal/models"
	"github.com/cactat/cactat/internal/repository"
	"github.com/cactat/cactat/internal/services"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// openRepository connects to Postgres when it is configured and falls back to
// memory otherwise. The returned func releases the connection.
func openRepository(requireDB bool) (services.SubmissionRepository, func(), error) {
	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if errors.Is(err, config.ErrPostgresNotConfigured) && !requireDB {
		log.Println("Postgres not configured, storing submissions in memory")
		return repository.NewMemoryRepository(), func() {}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("invalid postgres configuration: %w", err)
	}

	if err := database.Connect(pgConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Connected to database successfully")

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return repository.NewSubmissionRepository(), func() { database.Close() }, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the CAC TAT contact form server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "port to listen on (overrides PORT)",
			},
		},
		Action: func(c *cli.Context) error {
			repo, closeRepo, err := openRepository(false)
			if err != nil {
				return err
			}
			defer closeRepo()

			serverConfig := config.LoadServerConfig()
			if port := c.String("port"); port != "" {
				serverConfig.Port = port
			}

			deps, err := internalcli.NewServerDependencies(serverConfig, repo)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// SubmissionsCommand returns the submissions command
func SubmissionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "submissions",
		Usage: "List the most recent stored submissions",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: services.DefaultRecentLimit,
				Usage: "maximum number of submissions to show",
			},
		},
		Action: func(c *cli.Context) error {
			repo, closeRepo, err := openRepository(true)
			if err != nil {
				return err
			}
			defer closeRepo()

			submissions, err := services.NewSubmissionService(repo).Recent(c.Int("limit"))
			if err != nil {
				return err
			}

			return printSubmissions(c.App.Writer, submissions)
		},
	}
}

func printSubmissions(out io.Writer, submissions []*models.Submission) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tNAME\tEMAIL\tPRODUCT\tTYPE")
	for _, s := range submissions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.FullName(),
			s.Email,
			s.Product,
			s.SupportType,
		)
	}
	return w.Flush()
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "cactat",
		Usage:   "Central de Atendimento ao Cliente TAT",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			SubmissionsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
