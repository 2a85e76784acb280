package clips

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mememaker-site/database"
)

func setupTempURLTest(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&TempURL{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	database.Init(db, logger)
}

func TestCreateTempURLReusesUnexpiredToken(t *testing.T) {
	setupTempURLTest(t)

	first, err := CreateTempURL("/data/a.mp4")
	if err != nil {
		t.Fatalf("CreateTempURL: %v", err)
	}
	second, err := CreateTempURL("/data/a.mp4")
	if err != nil {
		t.Fatalf("CreateTempURL: %v", err)
	}
	if second.Token != first.Token {
		t.Fatalf("same file minted a second token: %q vs %q", second.Token, first.Token)
	}

	var count int64
	database.Get().Model(&TempURL{}).Count(&count)
	if count != 1 {
		t.Fatalf("%d rows for one file, want 1", count)
	}
}

func TestCreateTempURLDistinctFilesDistinctTokens(t *testing.T) {
	setupTempURLTest(t)

	a, err := CreateTempURL("/data/a.mp4")
	if err != nil {
		t.Fatalf("CreateTempURL: %v", err)
	}
	b, err := CreateTempURL("/data/b.mp4")
	if err != nil {
		t.Fatalf("CreateTempURL: %v", err)
	}
	if a.Token == b.Token {
		t.Fatal("different files shared a token")
	}
}

func TestCreateTempURLIgnoresExpiredToken(t *testing.T) {
	setupTempURLTest(t)

	stale := TempURL{
		Token:     generateToken(),
		FilePath:  "/data/a.mp4",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := database.Get().Create(&stale).Error; err != nil {
		t.Fatalf("seed expired token: %v", err)
	}

	fresh, err := CreateTempURL("/data/a.mp4")
	if err != nil {
		t.Fatalf("CreateTempURL: %v", err)
	}
	if fresh.Token == stale.Token {
		t.Fatal("reused an expired token")
	}
	if !fresh.ExpiresAt.After(time.Now()) {
		t.Fatalf("fresh token already expired at %v", fresh.ExpiresAt)
	}
}
