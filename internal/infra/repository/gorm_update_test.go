package repository

import (
	"context"
	"testing"
	"time"

	"cardapio/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a server and records the bound vars of every UPDATE.
func dryRunDB(t *testing.T) (*gorm.DB, *[]interface{}) {
	t.Helper()
	gdb, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=cardapio dbname=cardapio sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	var vars []interface{}
	require.NoError(t, gdb.Callback().Update().After("gorm:update").Register("test:capture_vars", func(tx *gorm.DB) {
		vars = append(vars, tx.Statement.Vars...)
	}))
	return gdb, &vars
}

func TestOrderGormRepository_UpdateStatusStampsGivenTime(t *testing.T) {
	gdb, vars := dryRunDB(t)
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	_ = NewOrderGormRepository(gdb).UpdateStatus(context.Background(), 7, 2, model.OrderStatusCompleted, at)

	assert.Contains(t, *vars, at)
	assert.Contains(t, *vars, model.OrderStatusCompleted)
}

func TestDeliveryAreaGormRepository_UpdateStampsAreaTime(t *testing.T) {
	gdb, vars := dryRunDB(t)
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	_ = NewDeliveryAreaGormRepository(gdb).Update(context.Background(), model.DeliveryArea{ID: 1, DistrictName: "Centro", UpdatedAt: at})

	assert.Contains(t, *vars, at)
	assert.Contains(t, *vars, "Centro")
}
