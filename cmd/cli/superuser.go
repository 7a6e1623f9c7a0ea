package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/causehive/infra/initializer"
	"github.com/amirasaad/causehive/pkg/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func createSuperuserCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create a staff account",
		Long: `Create a staff account. The password is read from the terminal
without echo, or from the first line of stdin when it is not a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, cleanup, err := initializer.InitializeDependencies(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := app.New(deps, cfg).AuthService.CreateSuperuser(context.Background(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ superuser %s created (%s)", u.Email, u.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address of the new account")
	return cmd
}

// readPassword prompts twice on a terminal. Other readers supply the
// password on their first line.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		fmt.Fprint(prompt, "Password (again): ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}

