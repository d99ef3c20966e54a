package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobwise/app/analyzer"
	"github.com/umputun/jobwise/app/backup"
	"github.com/umputun/jobwise/app/notify"
	"github.com/umputun/jobwise/app/store"
	"github.com/umputun/jobwise/app/store/slot"
	"github.com/umputun/jobwise/app/web"
)

var opts struct {
	Store struct {
		Type    string `long:"type" env:"TYPE" default:"file" description:"durable slot type, file, sqlite, redis or memory"`
		Path    string `long:"path" env:"PATH" default:"var" description:"directory for file slot or sqlite db file"`
		Key     string `long:"key" env:"KEY" default:"jobwiseJobs" description:"slot key"`
		Redis   string `long:"redis" env:"REDIS" default:"redis://localhost:6379/0" description:"redis url"`
		Retries int    `long:"retries" env:"RETRIES" default:"3" description:"slot write attempts"`
	} `group:"store" namespace:"store" env-namespace:"JOBWISE_STORE"`

	Web struct {
		Address      string        `long:"address" env:"ADDRESS" default:":8080" description:"web server listen address"`
		PasswordHash string        `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash for basic auth"`
		LoginTTL     time.Duration `long:"login-ttl" env:"LOGIN_TTL" default:"24h" description:"login session TTL"`
	} `group:"web" namespace:"web" env-namespace:"JOBWISE_WEB"`

	Analyzer struct {
		Delay time.Duration `long:"delay" env:"DELAY" default:"3s" description:"analysis delay"`
	} `group:"analyzer" namespace:"analyzer" env-namespace:"JOBWISE_ANALYZER"`

	Notify struct {
		Destinations []string      `long:"dest" env:"DEST" env-delim:"," description:"notification destination(s), webhook or mailto url"`
		Timeout      time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"per-send timeout"`
		Retries      int           `long:"retries" env:"RETRIES" default:"3" description:"send attempts"`
		SMTPHost     string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort     int           `long:"smtp-port" env:"SMTP_PORT" default:"25" description:"SMTP port"`
		SMTPUsername string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		SMTPTLS      bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		SMTPTimeOut  time.Duration `long:"smtp-timeout" env:"SMTP_TIMEOUT" default:"10s" description:"SMTP TCP connection timeout"`
	} `group:"notify" namespace:"notify" env-namespace:"JOBWISE_NOTIFY"`

	Backup struct {
		Location string        `long:"location" env:"LOCATION" description:"backup directory, disabled if empty"`
		Schedule string        `long:"schedule" env:"SCHEDULE" default:"@daily" description:"backup schedule, cron format"`
		Keep     int           `long:"keep" env:"KEEP" default:"7" description:"max number of backups"`
		MaxAge   time.Duration `long:"max-age" env:"MAX_AGE" default:"720h" description:"max age of backups"`
	} `group:"backup" namespace:"backup" env-namespace:"JOBWISE_BACKUP"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"jobwise.log" description:"log file name"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in MB"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of rotated files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"30" description:"max age of rotated files in days"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated files"`
	} `group:"log" namespace:"log" env-namespace:"JOBWISE_LOG"`

	Dbg bool `long:"dbg" env:"JOBWISE_DEBUG" description:"debug mode"`
}

var revision = "unknown"

func main() {
	fmt.Printf("jobwise %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGTERM and SIGINT

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run wires store, notifications, backups and web server, blocks until ctx canceled
func run(ctx context.Context) error {
	if err := checkBackupLocation(); err != nil {
		return err
	}
	jobsSlot, err := makeSlot()
	if err != nil {
		return fmt.Errorf("failed to make slot: %w", err)
	}
	defer func() {
		if err := jobsSlot.Close(); err != nil {
			log.Printf("[WARN] failed to close slot: %v", err)
		}
	}()
	log.Printf("[INFO] jobs slot %s", jobsSlot)

	toasts := notify.NewService(notify.Params{
		Destinations: opts.Notify.Destinations,
		Timeout:      opts.Notify.Timeout,
		Retries:      opts.Notify.Retries,
	}, notify.MakeSenders(notify.SendersParams{
		SMTPHost:       opts.Notify.SMTPHost,
		SMTPPort:       opts.Notify.SMTPPort,
		SMTPUsername:   opts.Notify.SMTPUsername,
		SMTPPassword:   opts.Notify.SMTPPassword,
		SMTPTLS:        opts.Notify.SMTPTLS,
		SMTPTimeout:    opts.Notify.SMTPTimeOut,
		WebhookTimeout: opts.Notify.Timeout,
	})...)
	go toasts.Run(ctx)

	jobs := store.New(store.Params{Slot: jobsSlot, Notifier: toasts, Repeater: store.NewRepeater(opts.Store.Retries)})
	if err = jobs.Load(ctx); err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	if opts.Backup.Location != "" {
		bk := &backup.Service{Location: opts.Backup.Location, Keep: opts.Backup.Keep, MaxAge: opts.Backup.MaxAge,
			Source: jobs.Snapshot}
		go func() {
			if err := bk.Run(ctx, opts.Backup.Schedule); err != nil {
				log.Printf("[WARN] backups disabled, %v", err)
			}
		}()
	}

	srv, err := web.New(web.Config{
		Store:        jobs,
		Analyzer:     &analyzer.Service{Delay: opts.Analyzer.Delay},
		Toasts:       toasts,
		Version:      revision,
		PasswordHash: opts.Web.PasswordHash,
		LoginTTL:     opts.Web.LoginTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return srv.Run(ctx, opts.Web.Address)
}

type closableSlot interface {
	store.Slot
	Close() error
}

// makeSlot creates durable slot for the configured store type
func makeSlot() (closableSlot, error) {
	key := opts.Store.Key
	if key == "" {
		key = slot.DefaultKey
	}
	switch opts.Store.Type {
	case "file":
		return slot.NewFile(opts.Store.Path, key)
	case "sqlite":
		if err := os.MkdirAll(opts.Store.Path, 0o700); err != nil {
			return nil, fmt.Errorf("failed to make store directory %s: %w", opts.Store.Path, err)
		}
		return slot.NewSQLite(filepath.Join(opts.Store.Path, "jobwise.db"), key)
	case "redis":
		return slot.NewRedis(opts.Store.Redis, key)
	case "memory":
		return slot.NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("unsupported store type %q", opts.Store.Type)
	}
}

// checkBackupLocation rejects backups into the directory holding the store itself
func checkBackupLocation() error {
	if opts.Backup.Location == "" || (opts.Store.Type != "file" && opts.Store.Type != "sqlite") {
		return nil
	}
	backupDir, err := filepath.Abs(opts.Backup.Location)
	if err != nil {
		return fmt.Errorf("invalid backup location %s: %w", opts.Backup.Location, err)
	}
	storeDir, err := filepath.Abs(opts.Store.Path)
	if err != nil {
		return fmt.Errorf("invalid store path %s: %w", opts.Store.Path, err)
	}
	if backupDir == storeDir {
		return fmt.Errorf("backup location %s can't be the store directory", opts.Backup.Location)
	}
	return nil
}

// setupLogs configures lgr and returns the writer used for log output
func setupLogs() io.Writer {
	var out io.Writer = os.Stdout
	if opts.Log.Enabled {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] %v received, shutting down", sig)
			cancel()
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
