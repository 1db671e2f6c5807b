package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/config"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/resolver"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/vocabulary"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Database.SQLite.Path = ":memory:"
	cfg.Repair.BatchDelay = 0
	cfg.Cache.Enabled = true
	return cfg
}

func TestService_ResolveAndRepair(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, testConfig(), observability.NopLogger())
	require.NoError(t, err)
	defer svc.Close()
	require.NoError(t, svc.Ping(ctx))
	require.NotNil(t, svc.Cache)

	rec := &storage.Record{MatType: "3d", CellStructure: "romby", MaterialColor: "czarny", BorderColor: "bordowy", ImagePath: "/stale.webp"}
	require.NoError(t, svc.Records.Upsert(ctx, rec))

	form := vocabulary.FormConfiguration{MatType: "with-rims", CellStructure: "rhombus", MaterialColor: "black", BorderColor: "maroon"}
	result, err := svc.Resolver.Resolve(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, resolver.StatusFoundFallback, result.Status)
	assert.Equal(t, "/stale.webp", result.Record.ImagePath)

	report, err := svc.RepairRunner(false).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)

	// The repair invalidated the cached lookup.
	result, err = svc.Resolver.Resolve(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "/konfigurator/dywaniki/3d/romby/bordowe/5os-3d-diamonds-black-maroon.webp", result.Record.ImagePath)
}

func TestService_CacheDisabledByDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.SQLite.Path = ":memory:"

	svc, err := New(context.Background(), cfg, observability.NopLogger())
	require.NoError(t, err)
	defer svc.Close()
	assert.Nil(t, svc.Cache)
}

func TestService_BadDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Driver = "oracle"

	_, err := New(context.Background(), cfg, observability.NopLogger())
	assert.Error(t, err)
}

func TestService_InsertFromAnotherProcessIsVisible(t *testing.T) {
	tests := []struct {
		name         string
		cacheEnabled bool
	}{
		{"no cache", false},
		{"memory cache", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.DefaultConfig()
			cfg.Database.SQLite.Path = filepath.Join(t.TempDir(), "shared.db")
			cfg.Cache.Enabled = tc.cacheEnabled

			api, err := New(ctx, cfg, observability.NopLogger())
			require.NoError(t, err)
			defer api.Close()
			cli, err := New(ctx, cfg, observability.NopLogger())
			require.NoError(t, err)
			defer cli.Close()

			form := vocabulary.FormConfiguration{MatType: "with-rims", CellStructure: "rhombus", MaterialColor: "black", BorderColor: "maroon"}
			result, err := api.Resolver.Resolve(ctx, form)
			require.NoError(t, err)
			assert.Equal(t, resolver.StatusNotFound, result.Status)

			rec := &storage.Record{MatType: "3d", CellStructure: "romby", MaterialColor: "czarny", BorderColor: "bordowy", ImagePath: "/seeded.webp"}
			require.NoError(t, cli.Records.Upsert(ctx, rec))
			if cli.Cache != nil {
				require.NoError(t, cli.Cache.Invalidate(ctx))
			}

			result, err = api.Resolver.Resolve(ctx, form)
			require.NoError(t, err)
			assert.Equal(t, resolver.StatusFoundFallback, result.Status)
			require.NotNil(t, result.Record)
			assert.Equal(t, "/seeded.webp", result.Record.ImagePath)
		})
	}
}

func TestService_SQLite3DriverAlias(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Driver = "sqlite3"
	require.NoError(t, cfg.Validate())

	svc, err := New(context.Background(), cfg, observability.NopLogger())
	require.NoError(t, err)
	defer svc.Close()
	require.NoError(t, svc.Ping(context.Background()))
}
