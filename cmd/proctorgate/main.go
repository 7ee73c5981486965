package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quangdm/proctorgate/pkg/admin"
	"github.com/quangdm/proctorgate/pkg/authn"
	"github.com/quangdm/proctorgate/pkg/logging"
	"github.com/quangdm/proctorgate/pkg/session"
	"github.com/quangdm/proctorgate/pkg/users"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
	actingAs    string
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "proctorgate",
	Short:         "Exam proctoring dashboard access-control core",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `proctorgate - authentication and role-gated access control for the
exam proctoring dashboard.

Credentials live in a JSON file (or an embedded SQLite database):
[
  { "user": "admin1", "pass_sha256": "<hex>", "role": "admin" },
  { "user": "gv01",   "pass_sha256": "<hex>", "role": "proctor", "exam_scope": "E01" }
]

With no persisted store, a configured seed file is used, then a built-in
three-user default set. Every gated command authenticates an acting user
first and authorizes the operation against their role.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("proctorgate %s\n", version)
			return nil
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")

	for _, cmd := range []*cobra.Command{userCmd, eventsCmd, thresholdsCmd} {
		cmd.PersistentFlags().StringVar(&actingAs, "as", "", "identity to act as (secret prompted)")
	}

	rootCmd.AddCommand(checkLoginCmd, userCmd, eventsCmd, thresholdsCmd, hashCmd)
}

// app wires the core together for one CLI invocation (a single execution
// context, so a single session)
type app struct {
	config   Config
	fsys     afero.Fs
	store    *users.Store
	auth     *authn.Authenticator
	admins   *admin.Service
	sessions *session.Manager
}

func newApp() (*app, error) {
	var config Config
	if err := LoadConfig(cfgFile, &config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Initialize(&logging.Config{
		AuditLogPath: config.AuditLogPath,
		AuditMaxSize: config.AuditMaxSize,
		Level:        config.AppLogLevel,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	fsys := afero.NewOsFs()

	var source users.Source
	if config.SQLitePath != "" {
		sq, err := users.OpenSQLiteSource(config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open user database: %w", err)
		}
		source = sq
	} else {
		source = users.NewFileSource(fsys, config.UsersFile)
	}

	var seed []users.UserRecord
	if config.SeedFile != "" {
		var err error
		seed, err = users.LoadSeedFile(fsys, config.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
	}

	store, err := users.NewStore(source, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load user store: %w", err)
	}

	auth, err := authn.NewAuthenticator(store, nil)
	if err != nil {
		return nil, err
	}
	admins, err := admin.NewService(store, nil)
	if err != nil {
		return nil, err
	}

	return &app{
		config:   config,
		fsys:     fsys,
		store:    store,
		auth:     auth,
		admins:   admins,
		sessions: session.NewManager(),
	}, nil
}

// loginAs begins a session and runs the full login flow for the identity,
// prompting for the secret
func (a *app) loginAs(identity string) (*session.Session, error) {
	if identity == "" {
		return nil, fmt.Errorf("--as is required")
	}
	secret, err := promptSecret(fmt.Sprintf("Secret for %s: ", identity))
	if err != nil {
		return nil, err
	}

	sess := a.sessions.Begin()
	if err := a.auth.Login(sess, identity, secret); err != nil {
		a.sessions.End(sess.ID)
		return nil, err
	}
	return sess, nil
}

// promptSecret reads a secret without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests)
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var checkLoginCmd = &cobra.Command{
	Use:   "check-login <identity>",
	Short: "Run the login flow for an identity and report the outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		sess, err := app.loginAs(args[0])
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		if sess.Scope != "" {
			fmt.Printf("ok: %s role=%s scope=%s\n", sess.Identity, sess.Role, sess.Scope)
		} else {
			fmt.Printf("ok: %s role=%s\n", sess.Identity, sess.Role)
		}
		return nil
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print the stored digest for a secret (for seed file authoring)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := promptSecret("Secret: ")
		if err != nil {
			return err
		}
		fmt.Println(authn.NewSHA256Hasher().Hash(secret))
		return nil
	},
}
