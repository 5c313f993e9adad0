package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/test"
)

var (
	chairThreadID = uuid.MustParse("d290f1ee-6c54-4b01-90e6-d701748f0851")
	lampThreadID  = uuid.MustParse("5a2b1c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	chairItemID   = uuid.MustParse("9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a")
	chairPostID   = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
)

func TestThreadsStorage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres integration tests in short mode")
	}
	suite.Run(t, new(ThreadsStorageSuite))
}

type ThreadsStorageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	db               *PostgresDB
	storage          *ThreadsStorage
}

func (suite *ThreadsStorageSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	ctx := context.Background()
	suite.db, err = NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
	if err != nil {
		suite.T().Fatalf("Failed to connect to database: %v", err)
	}

	migrator, err := suite.db.Migrator()
	suite.Require().NoError(err)
	suite.Require().NoError(migrator.Up())
	version, dirty, err := migrator.Version()
	suite.Require().NoError(err)
	suite.Require().False(dirty)
	suite.Require().Equal(uint(1), version)
	suite.Require().NoError(migrator.Close())

	suite.storage = NewThreadsStorage(suite.db)
}

func (suite *ThreadsStorageSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "testdata/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *ThreadsStorageSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil && suite.postgresResource != nil {
		_ = suite.dockerPool.Purge(suite.postgresResource)
	}
}

func (suite *ThreadsStorageSuite) TestFindThreadsBySubjectWords() {
	ctx := context.Background()
	cutoff := time.Date(2024, 4, 3, 12, 0, 0, 0, time.UTC)

	threads, err := suite.storage.FindThreadsBySubjectWords(ctx, []string{"chair", "lamp"}, cutoff)

	suite.Require().NoError(err)
	suite.Require().Len(threads, 1)
	suite.Equal(chairThreadID, threads[0].ID)
	suite.Equal("Free chair B-123", threads[0].Subject)
}

func (suite *ThreadsStorageSuite) TestFindThreadsBySubjectWords_ExpiredThreadsAreSkipped() {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	threads, err := suite.storage.FindThreadsBySubjectWords(context.Background(), []string{"lamp"}, cutoff)

	suite.Require().NoError(err)
	suite.Require().Len(threads, 1)
	suite.Equal(lampThreadID, threads[0].ID)

	threads, err = suite.storage.FindThreadsBySubjectWords(context.Background(), []string{"lamp"}, cutoff.AddDate(0, 3, 0))
	suite.Require().NoError(err)
	suite.Empty(threads)
}

func (suite *ThreadsStorageSuite) TestFindThreadsBySubjectWords_CaseSensitiveAndEscaped() {
	cutoff := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	threads, err := suite.storage.FindThreadsBySubjectWords(context.Background(), []string{"CHAIR"}, cutoff)
	suite.Require().NoError(err)
	suite.Empty(threads)

	threads, err = suite.storage.FindThreadsBySubjectWords(context.Background(), []string{"0%_c"}, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(threads, 1)
	suite.Equal("100%_cotton shirts", threads[0].Subject)

	threads, err = suite.storage.FindThreadsBySubjectWords(context.Background(), []string{"_"}, cutoff)
	suite.Require().NoError(err)
	suite.Len(threads, 1)
}

func (suite *ThreadsStorageSuite) TestCreateThreadPostAndItemInTx() {
	ctx := context.Background()
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	thread := &domain.Thread{ID: uuid.New(), Subject: "Couch in E-62"}
	thread.Touch(now)
	post := &domain.PostedEmail{ID: uuid.New(), ThreadID: thread.ID, Sender: "alice@example.com", Subject: thread.Subject, Text: "Comfy", Location: "E-62", ReceivedAt: now, ModifiedAt: now}
	item := &domain.Item{
		ID: uuid.New(), ThreadID: thread.ID, PostEmailID: post.ID, Name: "Couch In E-62", Sender: "alice@example.com",
		Description: "Comfy", Location: "E-62", Coordinates: &domain.Coordinates{Latitude: 42.3613, Longitude: -71.0829},
		IsFromEmail: true, ModifiedAt: now,
	}

	err := suite.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := suite.storage.CreateThread(ctx, thread); err != nil {
			return err
		}
		if err := suite.storage.CreatePostedEmail(ctx, post); err != nil {
			return err
		}
		return suite.storage.CreateItem(ctx, item)
	})
	suite.Require().NoError(err)

	items, err := suite.storage.ItemsOfThread(ctx, thread.ID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(post.ID, items[0].PostEmailID)
	suite.Equal(item.Coordinates, items[0].Coordinates)
	suite.True(items[0].IsFromEmail)
	suite.True(items[0].ModifiedAt.Equal(now))
}

func (suite *ThreadsStorageSuite) TestWithinTx_RollsBackOnError() {
	ctx := context.Background()
	thread := &domain.Thread{ID: uuid.New(), Subject: "Rolled back"}
	expectedErr := errors.New("boom")

	err := suite.storage.WithinTx(ctx, func(ctx context.Context) error {
		if err := suite.storage.CreateThread(ctx, thread); err != nil {
			return err
		}
		return expectedErr
	})
	suite.ErrorIs(err, expectedErr)

	_, err = suite.storage.LockThread(ctx, thread.ID)
	suite.ErrorIs(err, domain.ErrThreadNotFound)
}

func (suite *ThreadsStorageSuite) TestSaveThread_LastModifiedIsMonotonic() {
	ctx := context.Background()
	stale := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	err := suite.storage.SaveThread(ctx, &domain.Thread{ID: chairThreadID, Subject: "Free chair B-123", LastModified: &stale})
	suite.Require().NoError(err)

	thread, err := suite.storage.LockThread(ctx, chairThreadID)
	suite.Require().NoError(err)
	suite.True(thread.LastModified.Equal(time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC)))
}

func (suite *ThreadsStorageSuite) TestSaveThread_Unknown() {
	now := time.Now()
	err := suite.storage.SaveThread(context.Background(), &domain.Thread{ID: uuid.New(), Subject: "x", LastModified: &now})
	suite.ErrorIs(err, domain.ErrThreadNotFound)
}

func (suite *ThreadsStorageSuite) TestSaveItem_ClaimedIsSticky() {
	ctx := context.Background()
	items, err := suite.storage.ItemsOfThread(ctx, chairThreadID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)

	item := items[0]
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	item.Close("bob@example.com", now)
	suite.Require().NoError(suite.storage.SaveItem(ctx, &item))

	item.Claimed = false
	suite.Require().NoError(suite.storage.SaveItem(ctx, &item))

	items, err = suite.storage.ItemsOfThread(ctx, chairThreadID)
	suite.Require().NoError(err)
	suite.True(items[0].Claimed)
	suite.Contains(items[0].Description, "[CLOSED]")
}

func (suite *ThreadsStorageSuite) TestCreateClaimEmail_LinksItems() {
	ctx := context.Background()
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	claim := &domain.ClaimEmail{
		ID: uuid.New(), ThreadID: chairThreadID, Sender: "bob@example.com", Subject: "Re: Free chair B-123",
		Text: "claimed", ItemIDs: []uuid.UUID{chairItemID}, ReceivedAt: now, ModifiedAt: now,
	}

	suite.Require().NoError(suite.storage.CreateClaimEmail(ctx, claim))

	ids, err := suite.storage.ClaimedItemIDs(ctx, claim.ID)
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{chairItemID}, ids)
}

func (suite *ThreadsStorageSuite) TestItemsModifiedSince() {
	ctx := context.Background()

	items, err := suite.storage.ItemsModifiedSince(ctx, time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(chairItemID, items[0].ID)

	items, err = suite.storage.ItemsModifiedSince(ctx, time.Time{})
	suite.Require().NoError(err)
	suite.Len(items, 2)
	suite.Nil(items[0].Coordinates)
	suite.Equal(uuid.Nil, items[0].PostEmailID)
}
