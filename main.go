// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/api"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/auth"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/config"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/conversation"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/file"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/addrow"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/editrow"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/exporttasks"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/generatechallenges"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/getchathistory"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/register"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/removerow"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/sendmessage"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/signin"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/signout"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/startsession"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/handler/updatesettings"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/identity"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/llm"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/tasks"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()
	exportBucket := conf.Export.Bucket
	if exportBucket == "" {
		exportBucket = conf.Google.Project + "-exports"
	}

	gen, err := newGenerator(conf.Generation)
	if err != nil {
		return err
	}

	idp, err := identity.NewProvider(ctx, conf.Identity.APIKey, fbAuth)
	if err != nil {
		return fmt.Errorf("main: create identity provider: %w", err)
	}

	store := docstore.NewFirestore(firestore)
	settings := llm.NewSettingsRegistry(conf.Generation.APIKey)

	taskMgr := tasks.NewManager(store, gen)
	taskSessions := tasks.NewSessions(taskMgr, settings)
	chatSessions := conversation.NewSessions(conversation.NewManager(store, gen), settings)

	unsubscribe := idp.Subscribe(func(e identity.Event) {
		if e.SignedIn {
			return
		}
		taskSessions.Drop(e.UserID)
		chatSessions.Drop(e.UserID)
		settings.Drop(e.UserID)
	})
	defer unsubscribe()

	if tz := conf.Retention.TimeZone; tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("main: load retention time zone: %w", err)
		}
		taskMgr.SetLocation(loc)
	}
	if err := taskMgr.ScheduleSweeps(ctx, conf.Retention.Schedule); err != nil {
		return fmt.Errorf("main: schedule retention sweep: %w", err)
	}

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	authMW := auth.Middleware()
	mux.Use(middleware.Maybe(func(h http.Handler) http.Handler {
		return fbMW(authMW(h))
	}, func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/")
	}))

	mux.Use(i18n.Middleware())

	api.Handle(mux, http.MethodPost, "/auth/signin", signin.NewHandler(idp).SignIn)
	api.Handle(mux, http.MethodPost, "/auth/register", register.NewHandler(idp).Register)

	api.Handle(mux, http.MethodPost, "/api/signout", signout.NewHandler(idp).SignOut)
	api.Handle(mux, http.MethodPut, "/api/settings", updatesettings.NewHandler(settings).UpdateSettings)

	api.Handle(mux, http.MethodPost, "/api/tasks/session", startsession.NewHandler(taskSessions).StartSession)
	api.Handle(mux, http.MethodPost, "/api/tasks/rows/add", addrow.NewHandler(taskSessions).AddRow)
	api.Handle(mux, http.MethodPost, "/api/tasks/rows/remove", removerow.NewHandler(taskSessions).RemoveRow)
	api.Handle(mux, http.MethodPost, "/api/tasks/rows/edit", editrow.NewHandler(taskSessions).EditRow)
	api.Handle(mux, http.MethodPost, "/api/tasks/generate", generatechallenges.NewHandler(taskSessions).GenerateChallenges)
	api.Handle(mux, http.MethodGet, "/api/tasks/export",
		exporttasks.NewHandler(taskSessions, taskMgr, file.NewIO(storage, exportBucket)).ExportTasks)

	api.Handle(mux, http.MethodGet, "/api/chat/history", getchathistory.NewHandler(chatSessions).GetChatHistory)
	api.Handle(mux, http.MethodPost, "/api/chat/send", sendmessage.NewHandler(chatSessions).SendMessage)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	taskSessions.Wait()
	return nil
}

func newGenerator(conf config.Generation) (llm.Service, error) {
	switch conf.Provider {
	case "", "gemini":
		return llm.NewGemini(http.DefaultClient, conf.BaseURL, conf.Model), nil
	case "openai":
		return llm.NewOpenAI(http.DefaultClient, conf.BaseURL, conf.Model), nil
	default:
		return nil, fmt.Errorf("main: unknown generation provider %q", conf.Provider)
	}
}
