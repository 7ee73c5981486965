package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quangdm/proctorgate/pkg/users"
)

var (
	userRole  string
	userScope string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts (admin only)",
}

func init() {
	userAddCmd.Flags().StringVar(&userRole, "role", "viewer", "role: admin, proctor or viewer")
	userAddCmd.Flags().StringVar(&userScope, "scope", "", "exam scope, empty for unrestricted")
	userUpdateCmd.Flags().StringVar(&userRole, "role", "", "role: admin, proctor or viewer")
	userUpdateCmd.Flags().StringVar(&userScope, "scope", "", "exam scope, empty removes the restriction")
	userCmd.AddCommand(userListCmd, userAddCmd, userUpdateCmd, userResetCmd, userDeleteCmd)
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		records, err := app.admins.ListUsers(sess)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if rec.Scope != "" {
				fmt.Printf("%s\t%s\tscope=%s\n", rec.Identity, rec.Role, rec.Scope)
			} else {
				fmt.Printf("%s\t%s\n", rec.Identity, rec.Role)
			}
		}
		return nil
	},
}

var userAddCmd = &cobra.Command{
	Use:   "add <identity>",
	Short: "Add a user record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		role, err := users.ParseRole(userRole)
		if err != nil {
			return err
		}
		secret, err := promptSecret(fmt.Sprintf("New secret for %s: ", args[0]))
		if err != nil {
			return err
		}

		if err := app.admins.AddUser(sess, args[0], secret, role, userScope); err != nil {
			return err
		}
		fmt.Printf("added %s (%s)\n", args[0], role)
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <identity>",
	Short: "Set role and scope for a user record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		role, err := users.ParseRole(userRole)
		if err != nil {
			return err
		}

		if err := app.admins.UpdateUser(sess, args[0], role, userScope); err != nil {
			return err
		}
		fmt.Printf("updated %s\n", args[0])
		return nil
	},
}

var userResetCmd = &cobra.Command{
	Use:   "reset-password <identity>",
	Short: "Replace a user's secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		secret, err := promptSecret(fmt.Sprintf("New secret for %s: ", args[0]))
		if err != nil {
			return err
		}

		if err := app.admins.ResetPassword(sess, args[0], secret); err != nil {
			return err
		}
		fmt.Printf("reset password for %s\n", args[0])
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <identity>",
	Short: "Remove a user record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		if err := app.admins.DeleteUser(sess, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}
