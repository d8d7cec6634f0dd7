package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/jhoicas/comercio-admin/internal/domain"
)

func runAuth(ctx context.Context, deps Deps, cmd string, args []string) int {
	switch cmd {
	case "login":
		return authLogin(ctx, deps, args)
	case "logout":
		return authLogout(deps)
	case "change-password":
		return authChangePassword(ctx, deps, args)
	default:
		fmt.Fprintf(deps.Out, "comando desconocido: %s\n", cmd)
		return 2
	}
}

func authLogin(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	email := fs.String("email", "", "correo del administrador")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *email == "" || *password == "" {
		fmt.Fprintln(deps.Out, "faltan -email y/o -password")
		return 2
	}
	if err := deps.Auth.Login(ctx, *email, *password); err != nil {
		return 1
	}
	return 0
}

func authLogout(deps Deps) int {
	if err := deps.Auth.Logout(); err != nil {
		fmt.Fprintln(deps.Out, "no se pudo cerrar la sesión")
		return 1
	}
	fmt.Fprintln(deps.Out, "Sesión cerrada.")
	return 0
}

func authChangePassword(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	current := fs.String("current", "", "contraseña actual")
	updated := fs.String("new", "", "contraseña nueva")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *current == "" || *updated == "" {
		fmt.Fprintln(deps.Out, "faltan -current y/o -new")
		return 2
	}
	if err := deps.Auth.LoadSession(); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			fmt.Fprintln(deps.Out, "La sesión expiró. Inicia sesión de nuevo con: admin login")
		} else {
			fmt.Fprintln(deps.Out, "No hay sesión activa. Inicia sesión con: admin login")
		}
		return 1
	}
	if err := deps.Auth.ChangePassword(ctx, *current, *updated); err != nil {
		return 1
	}
	return 0
}
