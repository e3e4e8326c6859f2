package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"catalogsync/config"
	deliverycontext "catalogsync/internal/delivery/context"
	"catalogsync/internal/domain/entity"
	"catalogsync/internal/domain/lifecycle"
	"catalogsync/internal/infra/auth"
	logs "catalogsync/internal/infra/log"
	"catalogsync/internal/infra/mapper"
	"catalogsync/internal/infra/persistence"
	"catalogsync/internal/infra/persistence/model"
	"catalogsync/internal/infra/pubsub"
	"catalogsync/internal/infra/remote"
	"catalogsync/internal/usecase"
	"catalogsync/internal/usecase/impl"
	"catalogsync/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func runToken(w io.Writer, subject, role string, ttl time.Duration) error {
	if !entity.Role(role).IsValid() {
		return errors.Errorf("unknown role: %s", role)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateToken(subject, entity.Roles{entity.Role(role)}.ToStrings(), ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)

	return errors.WithStack(err)
}

func runSync(ctx context.Context, w io.Writer, companyID, fiscalYear int) error {
	return withCatalogSync(ctx, func(uc usecase.CatalogSyncUsecase) error {
		ctx := deliverycontext.WithSyncTrigger(ctx, deliverycontext.TriggerCLI)
		result, err := uc.Sync(ctx, entity.SyncRequest{CompanyID: companyID, FiscalYear: fiscalYear})
		if result != nil {
			fmt.Fprintf(w, "tenant:     %s\n", result.TenantKey)
			fmt.Fprintf(w, "status:     %s\n", result.Status)
			if result.Error != "" {
				fmt.Fprintf(w, "step:       %s\n", result.Step)
				fmt.Fprintf(w, "error:      %s\n", result.Error)
			}
			fmt.Fprintf(w, "version:    %d\n", result.Version)
			fmt.Fprintf(w, "articles:   %d\n", result.Articles)
			fmt.Fprintf(w, "categories: %d\n", result.Categories)
			fmt.Fprintf(w, "took:       %s\n", util.FormatDuration(result.FinishedAt.Sub(result.StartedAt)))
			if result.Truncated {
				fmt.Fprintln(w, "warning:    article list hit the page limit and may be incomplete")
			}
		}

		return err
	})
}

func runShow(ctx context.Context, w io.Writer, companyID int, full bool) error {
	return withCatalogSync(ctx, func(uc usecase.CatalogSyncUsecase) error {
		snapshot, err := uc.GetSnapshot(ctx, companyID)
		if err != nil {
			return err
		}

		if full {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")

			return errors.WithStack(enc.Encode(snapshot))
		}

		encoded, err := model.EncodeSnapshot(snapshot)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "tenant:     %s\n", snapshot.TenantKey)
		fmt.Fprintf(w, "status:     %s\n", snapshot.Status)
		fmt.Fprintf(w, "version:    %d\n", snapshot.Version)
		if !snapshot.LastSync.IsZero() {
			fmt.Fprintf(w, "last sync:  %s (%s ago)\n",
				snapshot.LastSync.Format(time.RFC3339), util.FormatDuration(snapshot.Age(time.Now())))
		}
		fmt.Fprintf(w, "articles:   %d\n", len(snapshot.Articles))
		fmt.Fprintf(w, "categories: %d\n", len(snapshot.Categories))
		fmt.Fprintf(w, "size:       %s\n", util.FormatBytes(int64(len(encoded))))
		fmt.Fprintf(w, "sha256:     %s\n", util.Checksum(encoded))

		return nil
	})
}

func runClear(ctx context.Context, w io.Writer, companyID int) error {
	return withCatalogSync(ctx, func(uc usecase.CatalogSyncUsecase) error {
		if err := uc.Clear(ctx, companyID); err != nil {
			return err
		}

		_, err := fmt.Fprintln(w, "snapshot cleared")

		return errors.WithStack(err)
	})
}

// withCatalogSync starts the sync stack for the lifetime of fn.
func withCatalogSync(ctx context.Context, fn func(uc usecase.CatalogSyncUsecase) error) error {
	var uc usecase.CatalogSyncUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			impl.NewCatalogSyncService,
		),
		persistence.Module,
		remote.Module,
		mapper.Module,
		pubsub.Module,
		fx.Populate(&uc),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()
		_ = uc.Shutdown(stopCtx)
		_ = app.Stop(stopCtx)
	}()

	return fn(uc)
}
