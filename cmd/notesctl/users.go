package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notekeeper/notekeeper/internal/handler/dto"
	"github.com/notekeeper/notekeeper/internal/service"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var input service.CreateUserInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.userService().CreateUser(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Username, user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&input.Username, "username", "", "Unique login name")
	create.Flags().StringVar(&input.Name, "name", "", "Display name")
	create.Flags().StringVar(&input.Password, "password", "", "Initial password")

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.userService().ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			resp := dto.ToUserListResponse(users)
			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), resp)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tNOTES")
			for _, u := range resp {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Name, strings.Join(u.Notes, ","))
			}
			return tw.Flush()
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	cmd.AddCommand(create, list)
	return cmd
}
