package commands

import (
	"github.com/systmms/officemru/internal/containers"
	omerrors "github.com/systmms/officemru/internal/errors"
	"github.com/systmms/officemru/internal/mru"
	"github.com/systmms/officemru/internal/office"
	"github.com/systmms/officemru/pkg/store"
)

// platformStore builds the configuration store commands read from.
// Tests swap it for a fake.
var platformStore = store.NewPlatformStore

// resolveAppFlag maps the --app/--alias flag pair to an application.
func resolveAppFlag(appName, alias string) (office.App, error) {
	app, ok := office.ResolveApp(appName, alias)
	if !ok {
		return 0, omerrors.UnknownApplicationError{Primary: appName, Secondary: alias}
	}
	return app, nil
}

// resolveAuthFlag maps the --auth flag to an auth mode.
func resolveAuthFlag(mode string) (mru.AuthMode, error) {
	parsed, ok := mru.ParseAuthMode(mode)
	if !ok {
		return 0, omerrors.UserError{
			Message:    "Unknown authentication mode '" + mode + "'",
			Suggestion: "Use --auth adal for enterprise-directory sign-ins or --auth liveid for consumer sign-ins",
		}
	}
	return parsed, nil
}

// containerFilter builds a cache filter from an optional --app flag value.
// An empty name covers all applications.
func containerFilter(appName string) (containers.Filter, error) {
	if appName == "" {
		return containers.All(), nil
	}
	app, err := resolveAppFlag(appName, "")
	if err != nil {
		return containers.Filter{}, err
	}
	return containers.Only(app), nil
}
