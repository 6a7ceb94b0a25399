// churchctl is the ops companion to the API: role seeding, admin promotion and
// a couple of diagnostics, all running against the same database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"divinelife/internal/config"
	"divinelife/internal/db"
	"divinelife/internal/members"
	"divinelife/internal/rbac"
	"divinelife/internal/seed"
)

var gdb *gorm.DB

func main() {
	root := &cobra.Command{
		Use:   "churchctl",
		Short: "Operational commands for the church management API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			gdb = db.Connect(cfg.DSN)
			if err := db.Migrate(gdb); err != nil {
				fail(err)
			}
		},
	}

	root.AddCommand(seedRolesCmd(), makeAdminCmd(), showUserRolesCmd(), showColumnsCmd(), addMemberCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-roles",
		Short: "Create the baseline roles (admin, member, mc_leader)",
		Run: func(cmd *cobra.Command, args []string) {
			roles, err := seed.Roles(gdb)
			if err != nil {
				fail(err)
			}
			names := make([]string, 0, len(roles))
			for _, r := range roles {
				names = append(names, r.Name)
			}
			printJSON(names)
		},
	}
}

func makeAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make-admin <email>",
		Short: "Assign the admin role to a user by email",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printUserRoles(args[0], true)
		},
	}
}

func showUserRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-user-roles <email>",
		Short: "Print a user's id, email and role names",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printUserRoles(args[0], false)
		},
	}
}

func printUserRoles(email string, makeAdmin bool) {
	ctx := context.Background()
	svc := rbac.Service{DB: gdb}

	user, err := svc.UserByEmail(ctx, email)
	if err != nil {
		printJSON(map[string]string{"error": "User not found"})
		os.Exit(1)
	}

	if makeAdmin {
		if err := svc.AssignRole(ctx, user.ID, "admin"); err != nil {
			fail(err)
		}
	}

	roles, err := svc.ListRoles(ctx, user.ID)
	if err != nil {
		fail(err)
	}
	printJSON(map[string]any{"user_id": user.ID, "email": user.Email, "roles": roles})
}

func showColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-columns [table]",
		Short: "Dump column metadata for a table (default: users)",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			table := "users"
			if len(args) == 1 {
				table = args[0]
			}
			cols, err := gdb.Migrator().ColumnTypes(table)
			if err != nil {
				printJSON(map[string]string{"error": err.Error()})
				os.Exit(1)
			}
			out := make([]map[string]any, 0, len(cols))
			for _, col := range cols {
				nullable, _ := col.Nullable()
				typ, _ := col.ColumnType()
				out = append(out, map[string]any{
					"Field": col.Name(),
					"Type":  typ,
					"Null":  nullable,
				})
			}
			printJSON(out)
		},
	}
}

func addMemberCmd() *cobra.Command {
	var rec members.Record
	cmd := &cobra.Command{
		Use:   "add-member",
		Short: "Insert one mc_members row",
		Run: func(cmd *cobra.Command, args []string) {
			id, err := members.Add(context.Background(), gdb, rec)
			if err != nil {
				printJSON(map[string]string{"error": err.Error()})
				os.Exit(1)
			}
			printJSON(map[string]int64{"id": id})
		},
	}
	cmd.Flags().StringVar(&rec.Name, "name", "", "member name (required)")
	cmd.Flags().StringVar(&rec.Email, "email", "", "email address")
	cmd.Flags().StringVar(&rec.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&rec.IsActive, "active", "", "active flag (default 1)")
	cmd.Flags().StringVar(&rec.JoinDate, "join-date", "", "join date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&rec.Gender, "gender", "", "gender (default Other)")
	cmd.Flags().StringVar(&rec.MCName, "mc-name", "", "missional community name (required)")
	cmd.Flags().StringVar(&rec.DOB, "dob", "", "date of birth YYYY-MM-DD")
	cmd.Flags().StringVar(&rec.DLMMember, "dlm", "", "DLM member flag (default 0)")
	return cmd
}

func printJSON(v any) {
	b, _ := json.Marshal(v)
	fmt.Println(string(b))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
