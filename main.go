package main

import (
	golog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mememaker-site/clips"
	"mememaker-site/config"
	"mememaker-site/database"
	"mememaker-site/ffmpeg"
	"mememaker-site/handlers"
	"mememaker-site/ytdlp"
)

var db *gorm.DB

func main() {

	initLogger()

	log.Infof("GitSHA: %s", config.GetGitSHA())
	log.Infof("BuildDate: %s", config.GetBuildDate())

	ffmpeg.Init(log)
	ytdlp.Init(log)
	clips.Init(log)
	if err := handlers.Init(log); err != nil {
		log.Panicf("failed to initialize handlers: %v", err)
	}

	gormLogger := logger.New(
		golog.New(os.Stdout, "\r\n", golog.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn, // Log level
			IgnoreRecordNotFoundError: true,        // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,        // Don't include params in the SQL log
			Colorful:                  false,       // Disable color
		},
	)

	// data dir holds downloads and produced clips
	err := os.MkdirAll(config.GetDataDir(), 0700)
	if err != nil {
		log.Panicf("failed to create data dir %s", config.GetDataDir())
	}
	err = os.MkdirAll(config.GetConfigDir(), 0700)
	if err != nil {
		log.Panicf("failed to create config dir %s", config.GetConfigDir())
	}

	// Initialize database
	dbPath := filepath.Join(config.GetConfigDir(), "clips.db")
	db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Panicf("failed to connect to database %s", dbPath)
	}

	// set only a single connection so we don't actually have concurrent writes
	sqlDB, err := db.DB()
	if err != nil {
		log.Panicln("failed to retrieve database")
	}
	sqlDB.SetMaxOpenConns(1)

	// Migrate the schema
	db.AutoMigrate(&clips.Job{}, &clips.TempURL{})

	database.Init(db, log)
	defer database.Fini()

	go PeriodicCleanup()

	// start the clip worker
	go clipWorker()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	api := e.Group("/api")
	api.Use(handlers.SessionMiddleware)
	api.POST("/metadata", handlers.MetadataPost)
	api.POST("/clips", handlers.ClipPost)
	api.GET("/clips", handlers.JobsGet)
	api.GET("/clips/events", handlers.JobEvents)
	api.GET("/clips/:id", handlers.JobGet)
	api.POST("/clips/:id/restart", handlers.JobRestart)
	api.POST("/clips/:id/delete", handlers.JobDelete)
	api.GET("/status", handlers.StatusGet)

	// download links are shareable, no session required
	e.GET("/download/:token", handlers.DownloadGet)

	// Start server
	e.Logger.Fatal(e.Start(config.GetListenAddr()))
}

func vacuumDatabase() {
	if err := db.Exec("VACUUM").Error; err != nil {
		log.Errorln(err)
	}
}

func PeriodicCleanup() {
	clips.CleanupExpiredURLs()
	vacuumDatabase()
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		clips.CleanupExpiredURLs()
		vacuumDatabase()
	}
}
