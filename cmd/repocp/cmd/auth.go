package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/docker/cli/cli/config"
	"github.com/docker/cli/cli/config/types"
	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type loginOptions struct {
	serverAddress string
	user          string
	password      string
	passwordStdin bool
}

func NewCmdAuthLogin() *cobra.Command {
	var opts loginOptions

	eg := `  # Log in to registry.example.com:5000
  repocp login registry.example.com:5000 -u <username> -p <password>`

	loginCmd := &cobra.Command{
		Use:     "login [OPTIONS] [SERVER]",
		Short:   "Log in to a registry",
		Example: eg,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := name.NewRegistry(args[0])
			if err != nil {
				return err
			}
			opts.serverAddress = reg.Name()
			return login(opts)
		},
	}

	flags := loginCmd.Flags()
	flags.StringVarP(&opts.user, "username", "u", "", "Username")
	flags.StringVarP(&opts.password, "password", "p", "", "Password")
	flags.BoolVarP(&opts.passwordStdin, "password-stdin", "", false, "Take the password from stdin")

	return loginCmd
}

func login(opts loginOptions) error {
	if opts.passwordStdin {
		bytePassword, err := term.ReadPassword(syscall.Stdin)
		if err != nil {
			return err
		}
		opts.password = strings.TrimSuffix(string(bytePassword), "\n")
		opts.password = strings.TrimSuffix(opts.password, "\r")
	}
	if opts.user == "" || opts.password == "" {
		return errors.New("username and password required")
	}

	cf, err := config.Load(os.Getenv("DOCKER_CONFIG"))
	if err != nil {
		return err
	}
	creds := cf.GetCredentialsStore(opts.serverAddress)
	if opts.serverAddress == name.DefaultRegistry {
		opts.serverAddress = authn.DefaultAuthKey
	}
	if err := creds.Store(types.AuthConfig{
		ServerAddress: opts.serverAddress,
		Username:      opts.user,
		Password:      opts.password,
	}); err != nil {
		return err
	}
	if err := cf.Save(); err != nil {
		return err
	}
	fmt.Printf("logged in via %s\n", cf.Filename)
	return nil
}

func NewCmdAuthLogout() *cobra.Command {
	eg := `  # Log out of registry.example.com:5000
  repocp logout registry.example.com:5000`

	return &cobra.Command{
		Use:     "logout [SERVER]",
		Short:   "Log out of a registry",
		Example: eg,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := name.NewRegistry(args[0])
			if err != nil {
				return err
			}
			serverAddress := reg.Name()

			cf, err := config.Load(os.Getenv("DOCKER_CONFIG"))
			if err != nil {
				return err
			}
			creds := cf.GetCredentialsStore(serverAddress)
			if serverAddress == name.DefaultRegistry {
				serverAddress = authn.DefaultAuthKey
			}
			if err := creds.Erase(serverAddress); err != nil {
				return err
			}
			if err := cf.Save(); err != nil {
				return err
			}
			fmt.Printf("logged out via %s\n", cf.Filename)
			return nil
		},
	}
}
