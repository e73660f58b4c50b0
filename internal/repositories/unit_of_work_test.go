package repositories_test

import (
	"context"
	"errors"
	"testing"

	"fridgeapi/internal/config"
	"fridgeapi/internal/database"
	"fridgeapi/internal/models"
	"fridgeapi/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseDSN: database.InMemoryDSN(uuid.NewString()),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// seedFridge commits a model, a fridge and a product and returns them.
func seedFridge(t *testing.T, db *gorm.DB) (*models.FridgeModel, *models.Fridge, *models.Product) {
	t.Helper()
	uow := repositories.NewGORMUnitOfWork(db)
	model := &models.FridgeModel{Name: "Atlant", Year: 2019}
	uow.FridgeModels().Create(model)
	fridge := &models.Fridge{Name: "Kitchen", OwnerName: "Ann", ModelID: model.ID}
	uow.Fridges().Create(fridge)
	product := &models.Product{Name: "Milk", DefaultQuantity: 2}
	uow.Products().Create(product)
	require.NoError(t, uow.Save(context.Background()))
	return model, fridge, product
}

func TestUnitOfWork_CreateIsStagedUntilSave(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := repositories.NewGORMUnitOfWork(db)
	product := &models.Product{Name: "Milk", DefaultQuantity: 2}
	uow.Products().Create(product)
	assert.NotEqual(t, uuid.Nil, product.ID)

	_, err := repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, uow.Save(ctx))

	found, err := repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)
	assert.Equal(t, "Milk", found.Name)
	assert.Equal(t, 2, found.DefaultQuantity)
}

func TestUnitOfWork_TrackedReadsShareIdentity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, _, product := seedFridge(t, db)

	repo := repositories.NewGORMUnitOfWork(db).Products()

	first, err := repo.FindByID(ctx, product.ID, repositories.Tracked)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, product.ID, repositories.Tracked)
	require.NoError(t, err)
	assert.Same(t, first, second)

	all, err := repo.FindAll(ctx, repositories.Tracked)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Same(t, first, all[0])

	detached, err := repo.FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)
	assert.NotSame(t, first, detached)
}

func TestUnitOfWork_TrackedChangesAreDetected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, _, product := seedFridge(t, db)

	uow := repositories.NewGORMUnitOfWork(db)
	tracked, err := uow.Products().FindByID(ctx, product.ID, repositories.Tracked)
	require.NoError(t, err)
	tracked.Name = "Oat milk"
	require.NoError(t, uow.Save(ctx))

	found, err := repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", found.Name)
}

func TestUnitOfWork_DetachedChangesNeedUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, _, product := seedFridge(t, db)

	uow := repositories.NewGORMUnitOfWork(db)
	detached, err := uow.Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)
	detached.DefaultQuantity = 9
	require.NoError(t, uow.Save(ctx))

	found, err := repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)
	assert.Equal(t, 2, found.DefaultQuantity)

	uow.Products().Update(detached)
	require.NoError(t, uow.Save(ctx))

	found, err = repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)
	assert.Equal(t, 9, found.DefaultQuantity)
}

func TestUnitOfWork_UpdateWritesZeroValues(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, fridge, _ := seedFridge(t, db)

	uow := repositories.NewGORMUnitOfWork(db)
	tracked, err := uow.Fridges().FindByID(ctx, fridge.ID, repositories.Tracked)
	require.NoError(t, err)
	tracked.OwnerName = ""
	uow.Fridges().Update(tracked)
	uow.Fridges().Update(tracked)
	require.NoError(t, uow.Save(ctx))

	found, err := repositories.NewGORMUnitOfWork(db).Fridges().FindByID(ctx, fridge.ID, repositories.Detached)
	require.NoError(t, err)
	assert.Empty(t, found.OwnerName)
	assert.Equal(t, "Kitchen", found.Name)
}

func TestUnitOfWork_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, _, product := seedFridge(t, db)

	uow := repositories.NewGORMUnitOfWork(db)
	tracked, err := uow.Products().FindByID(ctx, product.ID, repositories.Tracked)
	require.NoError(t, err)
	uow.Products().Delete(tracked)

	_, err = uow.Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err, "delete must not reach the database before save")

	require.NoError(t, uow.Save(ctx))

	_, err = repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUnitOfWork_DeleteOfStagedCreateCancelsIt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := repositories.NewGORMUnitOfWork(db)
	product := &models.Product{Name: "Butter"}
	uow.Products().Create(product)
	uow.Products().Delete(product)
	require.NoError(t, uow.Save(ctx))

	all, err := uow.Products().FindAll(ctx, repositories.Detached)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUnitOfWork_SaveIsAtomic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := repositories.NewGORMUnitOfWork(db)
	uow.Products().Create(&models.Product{Name: "Cheese"})
	uow.Fridges().Create(&models.Fridge{Name: "Garage", ModelID: uuid.New()})

	err := uow.Save(ctx)
	require.Error(t, err)

	all, err := repositories.NewGORMUnitOfWork(db).Products().FindAll(ctx, repositories.Detached)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUnitOfWork_SaveWithoutChanges(t *testing.T) {
	db := newTestDB(t)
	uow := repositories.NewGORMUnitOfWork(db)
	assert.NoError(t, uow.Save(context.Background()))
}

func TestUnitOfWork_UpdateOfVanishedRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, _, product := seedFridge(t, db)

	stale, err := repositories.NewGORMUnitOfWork(db).Products().FindByID(ctx, product.ID, repositories.Detached)
	require.NoError(t, err)

	remover := repositories.NewGORMUnitOfWork(db)
	remover.Products().Delete(stale)
	require.NoError(t, remover.Save(ctx))

	uow := repositories.NewGORMUnitOfWork(db)
	stale.Name = "Ghost"
	uow.Products().Update(stale)
	err = uow.Save(ctx)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestFridgeProductRepository_FindByFridge(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, fridge, product := seedFridge(t, db)
	_, otherFridge, _ := seedFridge(t, db)

	uow := repositories.NewGORMUnitOfWork(db)
	uow.FridgeProducts().Create(&models.FridgeProduct{FridgeID: fridge.ID, ProductID: product.ID, Quantity: 3})
	uow.FridgeProducts().Create(&models.FridgeProduct{FridgeID: otherFridge.ID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, uow.Save(ctx))

	rows, err := repositories.NewGORMUnitOfWork(db).FridgeProducts().FindByFridge(ctx, fridge.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
	require.NotNil(t, rows[0].Product)
	assert.Equal(t, "Milk", rows[0].Product.Name)
}

func TestFridgeProductRepository_ExecuteProcedureIsImmediate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, fridge, product := seedFridge(t, db)

	uow := repositories.NewGORMUnitOfWork(db)
	uow.FridgeProducts().Create(&models.FridgeProduct{FridgeID: fridge.ID, ProductID: product.ID, Quantity: 0})
	require.NoError(t, uow.Save(ctx))

	command := "UPDATE fridge_products SET quantity = (SELECT default_quantity FROM products WHERE products.id = fridge_products.product_id) WHERE quantity = 0"
	require.NoError(t, repositories.NewGORMUnitOfWork(db).FridgeProducts().ExecuteProcedure(ctx, command))

	rows, err := repositories.NewGORMUnitOfWork(db).FridgeProducts().FindByFridge(ctx, fridge.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestFridgeProductRepository_ExecuteProcedureError(t *testing.T) {
	db := newTestDB(t)
	err := repositories.NewGORMUnitOfWork(db).FridgeProducts().ExecuteProcedure(context.Background(), "CALL nothing_here()")
	assert.Error(t, err)
}

func TestGORMUnitOfWorkFactory_NewIsIndependent(t *testing.T) {
	db := newTestDB(t)
	factory := repositories.NewGORMUnitOfWorkFactory(db)

	first := factory.New()
	second := factory.New()
	first.Products().Create(&models.Product{Name: "Eggs"})

	require.NoError(t, second.Save(context.Background()))
	all, err := second.Products().FindAll(context.Background(), repositories.Detached)
	require.NoError(t, err)
	assert.Empty(t, all)
}
