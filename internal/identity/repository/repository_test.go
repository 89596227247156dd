package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("wsu_forum"),
		postgres.WithUsername("forum"),
		postgres.WithPassword("forum"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := testDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*models.User)(nil),
		(*models.Student)(nil),
		(*models.Faculty)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func truncateUsers(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE users, students, faculties RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func studentFixture() (*models.User, *models.Role) {
	u := &models.User{
		Username:     "warrior",
		Email:        "warrior@wayne.edu",
		PasswordHash: "hash",
	}
	role := &models.Role{
		Kind:    models.RoleStudent,
		Student: &models.Student{Major: "Computer Science", Classification: "Senior"},
	}
	return u, role
}

func Test_CreateUserWithRole(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u, role := studentFixture()
	err := repo.CreateUserWithRole(context.Background(), u, role)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)

	got, err := repo.GetRole(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, got.Kind)
	require.NotNil(t, got.Student)
	assert.Equal(t, "Computer Science", got.Student.Major)
}

func Test_CreateUserWithRole_Faculty(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u := &models.User{Username: "prof", Email: "prof@wayne.edu", PasswordHash: "hash"}
	role := &models.Role{
		Kind:    models.RoleFaculty,
		Faculty: &models.Faculty{Department: "Mathematics"},
	}
	require.NoError(t, repo.CreateUserWithRole(context.Background(), u, role))

	got, err := repo.GetRole(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, got.Kind)
	require.NotNil(t, got.Faculty)
	assert.Equal(t, "Mathematics", got.Faculty.Department)
}

func Test_UsernameAndEmailExists(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u, role := studentFixture()
	require.NoError(t, repo.CreateUserWithRole(context.Background(), u, role))

	exists, err := repo.UsernameExists(context.Background(), "warrior")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.EmailExists(context.Background(), "warrior@wayne.edu")
	require.NoError(t, err)
	assert.True(t, exists)
}

func Test_SetActive(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u, role := studentFixture()
	require.NoError(t, repo.CreateUserWithRole(context.Background(), u, role))
	assert.False(t, u.IsActive)

	require.NoError(t, repo.SetActive(context.Background(), u.ID, true))

	fetched, err := repo.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsActive)
}

func Test_DeleteUser(t *testing.T) {
	truncateUsers(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u, role := studentFixture()
	require.NoError(t, repo.CreateUserWithRole(context.Background(), u, role))
	require.NoError(t, repo.DeleteUser(context.Background(), u.ID))

	_, err := repo.GetUserByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = repo.DeleteUser(context.Background(), u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
